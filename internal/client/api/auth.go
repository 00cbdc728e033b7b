package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// LoginResult is what a successful login yields. The backend has answered
// with the fields at the top level and nested under "data"; both are read.
type LoginResult struct {
	Token     string
	Role      models.Role
	UserID    string
	StudentID string
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var body map[string]any
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login/",
		JSON:   map[string]string{"username": username, "password": password},
	}, &body)
	if err != nil {
		return LoginResult{}, err
	}

	data, _ := body["data"].(map[string]any)
	res := LoginResult{
		Token:     firstString(body["token"], data["token"]),
		Role:      models.Role(firstString(body["role"], data["role"])),
		UserID:    firstString(body["user"], data["user_id"]),
		StudentID: firstString(body["user"], data["student_id"]),
	}
	if res.Token == "" {
		return LoginResult{}, fmt.Errorf("login response carries no token")
	}
	return res, nil
}

// RequestOTP asks for a password-reset code by email and returns the reset
// token the backend issues alongside it.
func (c *Client) RequestOTP(ctx context.Context, email string) (string, error) {
	var body struct {
		Token struct {
			Access string `json:"access"`
		} `json:"token"`
	}
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/otp/",
		JSON:   map[string]string{"email": email},
	}, &body)
	if err != nil {
		return "", err
	}
	return body.Token.Access, nil
}

func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/auth/password/reset",
		JSON:   map[string]string{"token": resetToken, "password": password},
	}, nil)
}

// SignupResult is the new account's credentials under "data".
type SignupResult struct {
	Token  string
	Role   models.Role
	UserID string
}

func (c *Client) Signup(ctx context.Context, reg models.Registration) (SignupResult, error) {
	var body map[string]any
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/auth/signup/", JSON: reg}, &body)
	if err != nil {
		return SignupResult{}, err
	}
	data, _ := body["data"].(map[string]any)
	return SignupResult{
		Token:  firstString(data["token"]),
		Role:   models.Role(firstString(data["role"])),
		UserID: firstString(data["user_id"]),
	}, nil
}

// firstString returns the first value that renders as a non-empty string.
// JSON numbers are rendered without a fraction when integral.
func firstString(vals ...any) string {
	for _, v := range vals {
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		}
	}
	return ""
}
