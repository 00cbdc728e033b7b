package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/students/"}, &out)
	return out, err
}

func (c *Client) ListPublicStudents(ctx context.Context) ([]models.PublicStudent, error) {
	var out []models.PublicStudent
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/students/public/"}, &out)
	return out, err
}

// GetStudent fetches /students/{id}, which the backend routes without a
// trailing slash.
func (c *Client) GetStudent(ctx context.Context, id string) (models.Student, error) {
	var out models.Student
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/students/" + url.PathEscape(id)}, &out)
	return out, err
}

// UpdateStudent patches a student. With a picture the update is sent as
// multipart, nested user fields flattened to "user.<field>"; otherwise JSON.
func (c *Client) UpdateStudent(ctx context.Context, id string, upd models.StudentUpdate, picturePath string) error {
	req := Request{Method: http.MethodPatch, Path: "/students/" + url.PathEscape(id)}

	if picturePath == "" {
		req.JSON = upd
		return c.Do(ctx, req, nil)
	}

	f := NewForm().
		SetIf("roll_no", upd.RollNo).
		SetIf("club", upd.Club).
		SetIf("title", upd.Title).
		SetIf("profile_desc", upd.ProfileDesc)
	if u := upd.User; u != nil {
		f.SetIf("user.first_name", u.FirstName).
			SetIf("user.last_name", u.LastName).
			SetIf("user.email", u.Email).
			SetIf("user.username", u.Username).
			SetIf("user.phone_number", u.PhoneNumber).
			SetIf("user.password", u.Password).
			SetIf("user.role", string(u.Role))
	}
	f.AddFile("profile_pic", picturePath)
	req.Form = f
	return c.Do(ctx, req, nil)
}
