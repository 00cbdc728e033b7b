package forms

import (
	"strings"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// Profile is the member edit form. Empty fields are left unchanged.
type Profile struct {
	FirstName   string      `label:"first name"`
	LastName    string      `label:"last name"`
	Email       string      `label:"email" validate:"omitempty,email"`
	Username    string      `label:"username"`
	PhoneNumber string      `label:"phone number" validate:"omitempty,pkphone"`
	Password    string      `label:"password"`
	Role        models.Role `label:"role" validate:"omitempty,oneof=STUDENT LEAD ADMIN"`
	RollNo      string      `label:"registration number" validate:"omitempty,regno"`
	Club        string      `label:"club" validate:"omitempty,oneof=codehub graphics_and_media social_media_and_marketing registration_and_decor events_and_logistics"`
	Title       string      `label:"title"`
	ProfileDesc string      `label:"profile description" validate:"max=200"`
	Picture     string      `label:"profile picture" validate:"omitempty,file"`
}

func (p Profile) Validate() error {
	var empty string
	if p.Update().Empty() && p.Picture == "" {
		empty = "no changes detected"
	}
	return check(p, empty)
}

// Update converts the form to a partial update.
func (p Profile) Update() models.StudentUpdate {
	u := models.UserUpdate{
		FirstName:   strings.TrimSpace(p.FirstName),
		LastName:    strings.TrimSpace(p.LastName),
		Email:       strings.TrimSpace(p.Email),
		Username:    strings.TrimSpace(p.Username),
		PhoneNumber: strings.TrimSpace(p.PhoneNumber),
		Password:    strings.TrimSpace(p.Password),
		Role:        p.Role,
	}
	upd := models.StudentUpdate{
		RollNo:      strings.ToUpper(strings.TrimSpace(p.RollNo)),
		Club:        p.Club,
		Title:       strings.ToUpper(strings.TrimSpace(p.Title)),
		ProfileDesc: p.ProfileDesc,
	}
	if !u.Empty() {
		upd.User = &u
	}
	return upd
}
