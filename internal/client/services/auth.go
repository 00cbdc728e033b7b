// Package services contains application services for the chapterdesk client.
// This file defines the session store: login, logout, the OTP password-reset
// flow, signup, and rehydration of the session from local storage.
package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/acmchapter/chapterdesk/internal/client/api"
	"github.com/acmchapter/chapterdesk/internal/client/models"
	"github.com/acmchapter/chapterdesk/internal/client/repositories"
	"github.com/acmchapter/chapterdesk/internal/client/repositories/localstorage"
	"github.com/acmchapter/chapterdesk/internal/common"
	"github.com/acmchapter/chapterdesk/internal/logging"
)

// AuthClient is the slice of the REST API the session store talks to.
// *api.Client satisfies it.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (api.LoginResult, error)
	RequestOTP(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, resetToken, password string) error
	Signup(ctx context.Context, reg models.Registration) (api.SignupResult, error)
	GetStudent(ctx context.Context, id string) (models.Student, error)
}

// Result reports the outcome of an auth flow as a user-facing message.
type Result struct {
	OK      bool
	Message string
}

// SignupResult carries either the new account's credentials or the reasons
// the backend rejected it. FieldErrors are flattened "path.to.field: message"
// lines, empty for generic failures.
type SignupResult struct {
	OK          bool
	Token       string
	Role        models.Role
	UserID      string
	Message     string
	FieldErrors []string
}

// SessionService owns the authenticated session.
//
// Contract:
//   - Login: authenticate, persist token/role/user_id/student_id and, for a
//     LEAD, the club. Returns false and sets LastError on failure.
//   - Logout: drop every session key from memory and storage. Never fails.
//   - RequestOTP / ResetPassword: the two-step password reset.
//   - Signup: register a new account; the current session is not touched.
//   - Rehydrate: load the session from local storage (startup).
//
// Failures are reported through the returned values, never as Go errors.
type SessionService interface {
	Login(ctx context.Context, username, password string) bool
	Logout(ctx context.Context)
	RequestOTP(ctx context.Context, email string) Result
	ResetPassword(ctx context.Context, newPassword string) Result
	Signup(ctx context.Context, reg models.Registration) SignupResult
	Rehydrate(ctx context.Context) error
	Current() models.Session
	IsAuthenticated() bool
	LastError() string
}

type sessionService struct {
	client AuthClient
	repos  *repositories.Repositories
	log    logging.Logger

	mu      sync.Mutex
	session models.Session
	lastErr string
}

// jwtNow is a seam for the reset-token expiry check.
var jwtNow = time.Now

func NewSessionService(client AuthClient, repos *repositories.Repositories, log logging.Logger) SessionService {
	return &sessionService{client: client, repos: repos, log: log}
}

func (s *sessionService) Login(ctx context.Context, username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""

	res, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.lastErr = loginMessage(err)
		s.log.Warn(ctx, "login failed", "username", username, "error", err)
		return false
	}

	err = s.repos.WithTx(ctx, func(ctx context.Context, ls localstorage.Repository) error {
		items := [][2]string{
			{localstorage.KeyToken, res.Token},
			{localstorage.KeyRole, string(res.Role)},
			{localstorage.KeyUserID, res.UserID},
			{localstorage.KeyStudentID, res.StudentID},
		}
		for _, it := range items {
			if err := ls.SetItem(ctx, it[0], it[1]); err != nil {
				return err
			}
		}
		return ls.RemoveItem(ctx, localstorage.KeyClub)
	})
	if err != nil {
		s.lastErr = "Login failed: could not save session"
		s.log.Error(ctx, "persist session", "error", err)
		return false
	}

	s.session = models.Session{
		UserID:    res.UserID,
		StudentID: res.StudentID,
		Token:     res.Token,
		Role:      res.Role,
	}

	if res.Role == models.RoleLead && res.StudentID != "" {
		s.loadClub(ctx, res.StudentID)
	}

	s.log.Info(ctx, "logged in", "user_id", res.UserID, "role", string(res.Role))
	return true
}

// loadClub records a LEAD's club. Failure is logged and otherwise ignored.
func (s *sessionService) loadClub(ctx context.Context, studentID string) {
	st, err := s.client.GetStudent(ctx, studentID)
	if err != nil {
		s.log.Warn(ctx, "could not fetch student club", "student_id", studentID, "error", err)
		return
	}
	if st.Club == "" {
		return
	}
	if err := s.repos.LocalStorage.SetItem(ctx, localstorage.KeyClub, st.Club); err != nil {
		s.log.Warn(ctx, "persist club", "error", err)
		return
	}
	s.session.Club = st.Club
}

func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear(ctx, localstorage.SessionKeys)
	s.session = models.Session{}
	s.log.Info(ctx, "logged out")
}

// clear removes keys from storage, logging instead of failing.
func (s *sessionService) clear(ctx context.Context, keys []string) {
	err := s.repos.WithTx(ctx, func(ctx context.Context, ls localstorage.Repository) error {
		for _, k := range keys {
			if err := ls.RemoveItem(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error(ctx, "clear session keys", "error", err)
	}
}

func (s *sessionService) RequestOTP(ctx context.Context, email string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""

	token, err := s.client.RequestOTP(ctx, email)
	if err != nil {
		s.lastErr = nonFieldMessage(err, "OTP request failed")
		s.log.Warn(ctx, "otp request failed", "error", err)
		return Result{Message: s.lastErr}
	}

	s.session.ResetToken = token
	return Result{OK: true, Message: "OTP sent, check your email"}
}

func (s *sessionService) ResetPassword(ctx context.Context, newPassword string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""

	token := s.session.ResetToken
	if err := checkResetToken(token); err != nil {
		s.lastErr = err.Error()
		return Result{Message: s.lastErr}
	}

	if err := s.client.ResetPassword(ctx, token, newPassword); err != nil {
		s.lastErr = nonFieldMessage(err, "Password reset failed")
		s.log.Warn(ctx, "password reset failed", "error", err)
		return Result{Message: s.lastErr}
	}

	s.clear(ctx, []string{localstorage.KeyToken, localstorage.KeyRole, localstorage.KeyClub})
	s.session = models.Session{}
	return Result{OK: true, Message: "Password updated, please log in"}
}

// checkResetToken rejects a missing token, and a JWT whose exp has passed.
// Tokens that do not parse as JWTs are left for the server to judge.
func checkResetToken(token string) error {
	if token == "" {
		return common.ErrNoResetToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if !exp.After(jwtNow()) {
		return common.ErrResetTokenExpired
	}
	return nil
}

func (s *sessionService) Signup(ctx context.Context, reg models.Registration) SignupResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""

	res, err := s.client.Signup(ctx, reg)
	if err == nil {
		return SignupResult{OK: true, Token: res.Token, Role: res.Role, UserID: res.UserID}
	}

	s.log.Warn(ctx, "signup failed", "error", err)
	out := SignupResult{Message: "Signup failed"}
	if apiErr, ok := api.AsError(err); ok {
		if msg, ok := apiErr.Field("message"); ok {
			out.Message = msg
		} else if str, ok := apiErr.Body.(string); ok && str != "" {
			out.Message = str
		}
		out.FieldErrors = api.FlattenErrors(apiErr.Body)
	}
	s.lastErr = out.Message
	return out
}

func (s *sessionService) Rehydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ls := s.repos.LocalStorage
	var sess models.Session
	fields := []struct {
		key string
		dst *string
	}{
		{localstorage.KeyToken, &sess.Token},
		{localstorage.KeyUserID, &sess.UserID},
		{localstorage.KeyStudentID, &sess.StudentID},
		{localstorage.KeyClub, &sess.Club},
	}
	for _, f := range fields {
		v, err := ls.GetItem(ctx, f.key)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	role, err := ls.GetItem(ctx, localstorage.KeyRole)
	if err != nil {
		return err
	}
	sess.Role = models.Role(role)

	s.session = sess
	return nil
}

func (s *sessionService) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *sessionService) IsAuthenticated() bool {
	return s.Current().IsAuthenticated()
}

func (s *sessionService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// loginMessage picks non_field_errors, then detail, then the raw body.
func loginMessage(err error) string {
	apiErr, ok := api.AsError(err)
	if !ok {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "Login failed: " + err.Error()
		}
		return "Login failed"
	}
	if msg, ok := apiErr.Field("non_field_errors"); ok {
		return msg
	}
	if msg, ok := apiErr.Field("detail"); ok {
		return msg
	}
	if str, ok := apiErr.Body.(string); ok {
		if strings.TrimSpace(str) != "" {
			return str
		}
		return "Login failed"
	}
	if apiErr.Body == nil {
		return "Login failed"
	}
	return apiErr.JSON()
}

func nonFieldMessage(err error, fallback string) string {
	if apiErr, ok := api.AsError(err); ok {
		if msg, ok := apiErr.Field("non_field_errors"); ok {
			return msg
		}
	}
	return fallback
}
