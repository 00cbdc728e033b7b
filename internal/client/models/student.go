package models

import "strings"

// ExecutiveTitles are chapter-wide positions that need no club.
var ExecutiveTitles = []string{"PRESIDENT", "VICE PRESIDENT", "SECRETARY", "TREASURER"}

// IsExecutiveTitle reports whether title is one of ExecutiveTitles.
func IsExecutiveTitle(title string) bool {
	for _, t := range ExecutiveTitles {
		if t == title {
			return true
		}
	}
	return false
}

// Clubs accepted by the backend.
var Clubs = []string{
	"codehub",
	"graphics_and_media",
	"social_media_and_marketing",
	"registration_and_decor",
	"events_and_logistics",
}

type User struct {
	ID          int    `json:"id,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	Role        Role   `json:"role"`
	PhoneNumber string `json:"phone_number"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Student is a chapter member with its nested user account.
type Student struct {
	ID          int    `json:"id"`
	User        User   `json:"user"`
	RollNo      string `json:"roll_no"`
	Club        string `json:"club"`
	Title       string `json:"title"`
	ProfilePic  string `json:"profile_pic"`
	ProfileDesc string `json:"profile_desc"`
}

// PublicStudent is the reduced record shown on the public team page.
type PublicStudent struct {
	FullName   string `json:"full_name"`
	Title      string `json:"title"`
	ProfilePic string `json:"profile_pic"`
	UserID     int    `json:"user_id"`
	Club       string `json:"club"`
}

// StudentUpdate is a partial update; empty fields are not sent.
type StudentUpdate struct {
	User        *UserUpdate `json:"user,omitempty"`
	RollNo      string      `json:"roll_no,omitempty"`
	Club        string      `json:"club,omitempty"`
	Title       string      `json:"title,omitempty"`
	ProfileDesc string      `json:"profile_desc,omitempty"`
}

type UserUpdate struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Username    string `json:"username,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Password    string `json:"password,omitempty"`
	Role        Role   `json:"role,omitempty"`
}

// Empty reports whether no field is set.
func (u UserUpdate) Empty() bool {
	return u == UserUpdate{}
}

// Empty reports whether the update carries no change.
func (s StudentUpdate) Empty() bool {
	return (s.User == nil || s.User.Empty()) &&
		s.RollNo == "" && s.Club == "" && s.Title == "" && s.ProfileDesc == ""
}

// Registration is the body of POST /auth/signup/.
type Registration struct {
	User   User   `json:"user"`
	RollNo string `json:"roll_no"`
	Club   string `json:"club"`
	Title  string `json:"title"`
}
