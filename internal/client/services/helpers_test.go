package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acmchapter/chapterdesk/internal/client/api"
	"github.com/acmchapter/chapterdesk/internal/client/models"
	"github.com/acmchapter/chapterdesk/internal/client/repositories"
)

// fakeAuthClient implements AuthClient for unit tests.
type fakeAuthClient struct {
	LoginRet api.LoginResult
	LoginErr error

	OTPRet string
	OTPErr error

	ResetErr error

	SignupRet api.SignupResult
	SignupErr error

	StudentRet models.Student
	StudentErr error

	LastLoginUser     string
	LastLoginPassword string
	LastOTPEmail      string
	LastResetToken    string
	LastResetPassword string
	LastSignup        models.Registration
	LastStudentID     string

	ResetCalls int
}

func (f *fakeAuthClient) Login(ctx context.Context, username, password string) (api.LoginResult, error) {
	f.LastLoginUser = username
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuthClient) RequestOTP(ctx context.Context, email string) (string, error) {
	f.LastOTPEmail = email
	return f.OTPRet, f.OTPErr
}

func (f *fakeAuthClient) ResetPassword(ctx context.Context, resetToken, password string) error {
	f.ResetCalls++
	f.LastResetToken = resetToken
	f.LastResetPassword = password
	return f.ResetErr
}

func (f *fakeAuthClient) Signup(ctx context.Context, reg models.Registration) (api.SignupResult, error) {
	f.LastSignup = reg
	return f.SignupRet, f.SignupErr
}

func (f *fakeAuthClient) GetStudent(ctx context.Context, id string) (models.Student, error) {
	f.LastStudentID = id
	return f.StudentRet, f.StudentErr
}

func setupRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	repos, err := repositories.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "chapterdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func getItem(t *testing.T, repos *repositories.Repositories, key string) string {
	t.Helper()
	v, err := repos.LocalStorage.GetItem(context.Background(), key)
	require.NoError(t, err)
	return v
}

func setItem(t *testing.T, repos *repositories.Repositories, key, value string) {
	t.Helper()
	require.NoError(t, repos.LocalStorage.SetItem(context.Background(), key, value))
}
