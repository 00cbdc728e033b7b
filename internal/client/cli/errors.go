package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/acmchapter/chapterdesk/internal/client/api"
	"github.com/acmchapter/chapterdesk/internal/client/forms"
	"github.com/acmchapter/chapterdesk/internal/common"
)

// errExit is returned by the exit command; the REPL stops on it.
var errExit = errors.New("exit")

// RedirectError is returned by a guarded command when no session is stored.
// To names the command to run instead; From is the command that was refused.
type RedirectError struct {
	To   string
	From string
}

func (e *RedirectError) Error() string {
	return common.ErrLoginRequired.Error()
}

func (e *RedirectError) Unwrap() error {
	return common.ErrLoginRequired
}

// failure is a rejected submission: a headline plus per-field reasons.
type failure struct {
	msg     string
	details []string
}

func (f *failure) Error() string {
	if len(f.details) == 0 {
		return f.msg
	}
	return f.msg + ": " + strings.Join(f.details, "; ")
}

// report prints err the way the dashboard showed errors: one line, or one
// line per field problem.
func (a *App) report(err error) {
	var (
		redirect *RedirectError
		verrs    forms.ValidationErrors
		fail     *failure
	)

	switch {
	case errors.As(err, &redirect):
		a.out.Error("Login required: run `" + redirect.To + "` first.")
	case errors.As(err, &verrs):
		a.out.Error("Please fix the following:")
		for _, m := range verrs {
			a.out.Error("  - " + m)
		}
	case errors.As(err, &fail):
		a.out.Error(fail.msg)
		for _, d := range fail.details {
			a.out.Error("  - " + d)
		}
	case errors.Is(err, api.ErrUnauthorized):
		a.out.Error(err.Error())
		a.out.Note("Your session may have expired; log in again.")
	case api.IsUnavailable(err):
		a.out.Error("Server unavailable, try again later.")
		a.log.Debug(context.Background(), "transport error", "error", err)
	default:
		a.out.Error(err.Error())
	}
}
