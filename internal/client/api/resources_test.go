package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/acmchapter/chapterdesk/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_TopLevelAndNestedShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want LoginResult
	}{
		{"top level", `{"token": "tk", "role": "LEAD", "user": 5}`,
			LoginResult{Token: "tk", Role: models.RoleLead, UserID: "5", StudentID: "5"}},
		{"nested data", `{"data": {"token": "tk2", "role": "ADMIN", "user_id": 9, "student_id": "11"}}`,
			LoginResult{Token: "tk2", Role: models.RoleAdmin, UserID: "9", StudentID: "11"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]string
			c := newTestClient(t, "", func(r chi.Router) {
				r.Post("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
					_ = json.NewDecoder(r.Body).Decode(&got)
					writeJSON(w, http.StatusOK, tt.body)
				})
			})

			res, err := c.Login(context.Background(), "ali", "secret")
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, res))
			assert.Equal(t, map[string]string{"username": "ali", "password": "secret"}, got)
		})
	}
}

func TestLogin_MissingToken(t *testing.T) {
	c := newTestClient(t, "", func(r chi.Router) {
		r.Post("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"role": "STUDENT"}`)
		})
	})
	_, err := c.Login(context.Background(), "u", "p")
	require.Error(t, err)
}

func TestRequestOTPAndReset(t *testing.T) {
	var reset map[string]string
	c := newTestClient(t, "", func(r chi.Router) {
		r.Post("/auth/otp/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"token": {"access": "reset-jwt"}}`)
		})
		r.Put("/auth/password/reset", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&reset)
			writeJSON(w, http.StatusOK, `{"message": "ok"}`)
		})
	})

	tok, err := c.RequestOTP(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "reset-jwt", tok)

	require.NoError(t, c.ResetPassword(context.Background(), tok, "n3w"))
	assert.Equal(t, map[string]string{"token": "reset-jwt", "password": "n3w"}, reset)
}

func TestSignup(t *testing.T) {
	var got models.Registration
	c := newTestClient(t, "admin", func(r chi.Router) {
		r.Post("/auth/signup/", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			writeJSON(w, http.StatusCreated, `{"data": {"token": "new", "role": "STUDENT", "user_id": 21}}`)
		})
	})

	reg := models.Registration{
		User:   models.User{FirstName: "Sara", LastName: "Ali", Email: "s@x.pk", Username: "sara", Password: "pw", Role: models.RoleStudent, PhoneNumber: "+923001234567"},
		RollNo: "FA22-BCS-001",
		Club:   "codehub",
		Title:  "NULL",
	}
	res, err := c.Signup(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, SignupResult{Token: "new", Role: models.RoleStudent, UserID: "21"}, res)
	assert.Empty(t, cmp.Diff(reg, got))
}

func TestUpdateAttendance_PathHasNoTrailingSlash(t *testing.T) {
	var got models.AttendanceRecord
	c := newTestClient(t, "t", func(r chi.Router) {
		r.Put("/meetings/{id}/attendance/{att}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "4", chi.URLParam(r, "id"))
			assert.Equal(t, "17", chi.URLParam(r, "att"))
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusOK)
		})
	})

	rec := models.AttendanceRecord{ID: 17, Meeting: 4, User: 2, Status: models.StatusLeave}
	require.NoError(t, c.UpdateAttendance(context.Background(), "4", rec))
	assert.Equal(t, rec, got)
}

func TestIDsStayInOneSegment(t *testing.T) {
	var hits []string
	c := newTestClient(t, "t", func(r chi.Router) {
		r.Delete("/meetings/{id}/", func(w http.ResponseWriter, r *http.Request) {
			hits = append(hits, "meeting "+chi.URLParam(r, "id"))
			assert.Equal(t, "/api/meetings/5%2Fattendance%2F12/", r.URL.EscapedPath())
			w.WriteHeader(http.StatusNoContent)
		})
		r.Delete("/meetings/{id}/attendance/{att}/", func(w http.ResponseWriter, r *http.Request) {
			hits = append(hits, "attendance")
			w.WriteHeader(http.StatusNoContent)
		})
		r.Delete("/events/{id}/image/{img}", func(w http.ResponseWriter, r *http.Request) {
			hits = append(hits, "image "+chi.URLParam(r, "id")+" "+chi.URLParam(r, "img"))
			w.WriteHeader(http.StatusNoContent)
		})
	})

	ctx := context.Background()
	require.NoError(t, c.DeleteMeeting(ctx, "5/attendance/12"))
	require.NoError(t, c.DeleteEventImage(ctx, "7", "a b"))
	assert.Equal(t, []string{"meeting 5%2Fattendance%2F12", "image 7 a b"}, hits)
}

func TestCreateBlog_Multipart(t *testing.T) {
	cover := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(cover, []byte("\x89PNG"), 0o600))

	c := newTestClient(t, "t", func(r chi.Router) {
		r.Post("/blogs/upload/", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "Hello", r.FormValue("title"))
			assert.Equal(t, "<p>body</p>", r.FormValue("content"))

			fhs := r.MultipartForm.File["images"]
			require.Len(t, fhs, 1)
			assert.Equal(t, "cover.png", fhs[0].Filename)
			assert.Equal(t, "image/png", fhs[0].Header.Get("Content-Type"))

			f, err := fhs[0].Open()
			require.NoError(t, err)
			data, _ := io.ReadAll(f)
			assert.Equal(t, []byte("\x89PNG"), data)

			writeJSON(w, http.StatusCreated, `{"id": 3, "title": "Hello"}`)
		})
	})

	b, err := c.CreateBlog(context.Background(), BlogDraft{Title: "Hello", Content: "<p>body</p>", Cover: cover})
	require.NoError(t, err)
	assert.Equal(t, 3, b.ID)
}

func TestCreateBlog_MissingCoverFile(t *testing.T) {
	c := newTestClient(t, "t", func(r chi.Router) {})
	_, err := c.CreateBlog(context.Background(), BlogDraft{Title: "x", Content: "y", Cover: "/does/not/exist.png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode form")
}

func TestUpdateEvent_ListsAndImageField(t *testing.T) {
	img := filepath.Join(t.TempDir(), "poster.jpg")
	require.NoError(t, os.WriteFile(img, []byte("jpg"), 0o600))

	c := newTestClient(t, "t", func(r chi.Router) {
		r.Put("/events/{id}/", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, `["Dr. Khan","Ms. Ali"]`, r.FormValue("hosts"))
			assert.Equal(t, "", r.FormValue("tags"))
			assert.Equal(t, "14:30", r.FormValue("time_from"))
			assert.Len(t, r.MultipartForm.File["image"], 1)
			assert.Empty(t, r.MultipartForm.File["images"])
			w.WriteHeader(http.StatusOK)
		})
	})

	err := c.UpdateEvent(context.Background(), "8", EventDraft{
		Title: "Hack", Content: "c", Date: "2025-03-01", TimeFrom: "14:30",
		Hosts: []string{"Dr. Khan", "Ms. Ali"}, Images: []string{img},
	})
	require.NoError(t, err)
}

func TestUpdateStudent_JSONWithoutPicture(t *testing.T) {
	var ct string
	var got map[string]any
	c := newTestClient(t, "t", func(r chi.Router) {
		r.Patch("/students/{id}", func(w http.ResponseWriter, r *http.Request) {
			ct = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusOK)
		})
	})

	err := c.UpdateStudent(context.Background(), "3", models.StudentUpdate{Club: "codehub", User: &models.UserUpdate{Email: "n@x.pk"}}, "")
	require.NoError(t, err)
	assert.Equal(t, "application/json", ct)
	assert.Equal(t, map[string]any{"club": "codehub", "user": map[string]any{"email": "n@x.pk"}}, got)
}

func TestUpdateStudent_MultipartWithPicture(t *testing.T) {
	pic := filepath.Join(t.TempDir(), "me.jpg")
	require.NoError(t, os.WriteFile(pic, []byte("jpg"), 0o600))

	c := newTestClient(t, "t", func(r chi.Router) {
		r.Patch("/students/{id}", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "Sara", r.FormValue("user.first_name"))
			assert.Equal(t, "bio", r.FormValue("profile_desc"))
			assert.Len(t, r.MultipartForm.File["profile_pic"], 1)
			w.WriteHeader(http.StatusOK)
		})
	})

	err := c.UpdateStudent(context.Background(), "3", models.StudentUpdate{ProfileDesc: "bio", User: &models.UserUpdate{FirstName: "Sara"}}, pic)
	require.NoError(t, err)
}

func TestListApplications_SendsSession(t *testing.T) {
	c := newTestClient(t, "t", func(r chi.Router) {
		r.Get("/recruitment/application-review/", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "5", r.URL.Query().Get("recruitment_session"))
			writeJSON(w, http.StatusOK, `[{"id": 1, "status": "Under Review", "personal_info": {"first_name": "A"}}]`)
		})
	})

	apps, err := c.ListApplications(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Under Review", apps[0].Status.Label())
}

func TestSearchQueryEncoding(t *testing.T) {
	c := newTestClient(t, "", func(r chi.Router) {
		r.Get("/blogs/", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "go & rust", r.URL.Query().Get("search"))
			writeJSON(w, http.StatusOK, `[{"id": 1, "title": "Go"}]`)
		})
	})

	blogs, err := c.ListBlogs(context.Background(), "go & rust")
	require.NoError(t, err)
	assert.Len(t, blogs, 1)
}
