package forms

import (
	"strings"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// Registration is the signup form as typed in by an admin or lead.
type Registration struct {
	FullName    string      `label:"full name" validate:"required"`
	Username    string      `label:"username" validate:"required"`
	Email       string      `label:"email" validate:"required,email"`
	Password    string      `label:"password" validate:"required"`
	PhoneNumber string      `label:"phone number" validate:"pkphone"`
	RollNo      string      `label:"registration number" validate:"regno"`
	Role        models.Role `label:"role" validate:"oneof=STUDENT LEAD ADMIN"`
	Club        string      `label:"club" validate:"omitempty,oneof=codehub graphics_and_media social_media_and_marketing registration_and_decor events_and_logistics"`
	Title       string      `label:"title"`
}

// Normalize applies the input rules the form enforces while typing:
// registration number and title are upper-cased, the phone number keeps only
// digits and one leading plus.
func (r *Registration) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.RollNo = strings.ToUpper(strings.TrimSpace(r.RollNo))
	r.Title = strings.ToUpper(strings.TrimSpace(r.Title))
	r.PhoneNumber = sanitizePhone(r.PhoneNumber)
	if r.Role == "" {
		r.Role = models.RoleStudent
	}
}

// Validate checks every field. A club is required unless the title is an
// executive one.
func (r Registration) Validate() error {
	var clubErr string
	if r.Club == "" && !models.IsExecutiveTitle(r.Title) {
		clubErr = "club is required for non-executive members"
	}
	return check(r, clubErr)
}

// Payload builds the signup body. An empty title is sent as "NULL".
func (r Registration) Payload() models.Registration {
	first, last := SplitFullName(r.FullName)
	title := r.Title
	if title == "" {
		title = "NULL"
	}
	return models.Registration{
		User: models.User{
			FirstName:   first,
			LastName:    last,
			Email:       strings.TrimSpace(r.Email),
			Username:    strings.TrimSpace(r.Username),
			Password:    r.Password,
			Role:        r.Role,
			PhoneNumber: r.PhoneNumber,
		},
		RollNo: r.RollNo,
		Club:   r.Club,
		Title:  title,
	}
}

// SplitFullName splits on the first space: "Ali Raza Khan" → ("Ali", "Raza Khan").
func SplitFullName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	first, last, _ = strings.Cut(full, " ")
	return first, strings.TrimSpace(last)
}

func sanitizePhone(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
