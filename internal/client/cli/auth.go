package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acmchapter/chapterdesk/internal/client/forms"
	"github.com/acmchapter/chapterdesk/internal/client/models"
	"github.com/acmchapter/chapterdesk/internal/common"
)

// newLoginCmd prompts for whatever credentials were not passed as flags and
// opens a session. On success the dashboard home is suggested.
func (a *App) newLoginCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the chapter dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			user, err := a.ask(username, "Enter username")
			if err != nil {
				return err
			}

			password, err := getPassword("Enter password", a.out.Writer())
			if err != nil {
				return err
			}
			defer common.WipeByteArray(password)

			if !a.session.Login(ctx, user, string(password)) {
				return errors.New(a.session.LastError())
			}

			s := a.session.Current()
			a.out.Success(fmt.Sprintf("Logged in as %s (%s).", user, s.Role))
			a.out.Note(fmt.Sprintf("Run `%s list` to open your dashboard.", s.DashboardHome()))
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "account username")
	return cmd
}

func (a *App) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			a.session.Logout(cmd.Context())
			a.out.Success("Logged out.")
		},
	}
}

func (a *App) newOTPCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "otp",
		Short: "Request a password-reset code by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := a.ask(email, "Enter your email")
			if err != nil {
				return err
			}
			if addr == "" {
				return forms.ValidationErrors{"email is required"}
			}

			res := a.session.RequestOTP(cmd.Context(), addr)
			if !res.OK {
				return errors.New(res.Message)
			}
			a.out.Success(res.Message)
			a.out.Note("Run `reset-password` to choose a new password.")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func (a *App) newResetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password after requesting an OTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := a.out.Writer()

			pw, err := getPassword("New password", w)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(pw)

			again, err := getPassword("Repeat new password", w)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(again)

			if len(pw) == 0 {
				return forms.ValidationErrors{"password is required"}
			}
			if string(pw) != string(again) {
				return forms.ValidationErrors{"passwords do not match"}
			}

			res := a.session.ResetPassword(cmd.Context(), string(pw))
			if !res.OK {
				return errors.New(res.Message)
			}
			a.out.Success(res.Message)
			return nil
		},
	}
}

// newSignupCmd registers a new member. A lead's own club is used when no
// club is given.
func (a *App) newSignupCmd() *cobra.Command {
	var f forms.Registration
	var role string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.session.Current()
			if f.Club == "" && s.Role == models.RoleLead {
				f.Club = s.Club
			}
			f.Role = models.Role(role)

			pw, err := getPassword("Password for the new member", a.out.Writer())
			if err != nil {
				return err
			}
			f.Password = string(pw)
			common.WipeByteArray(pw)

			f.Normalize()
			if err := f.Validate(); err != nil {
				return err
			}

			res := a.session.Signup(cmd.Context(), f.Payload())
			if !res.OK {
				return &failure{msg: res.Message, details: res.FieldErrors}
			}

			a.out.Success(fmt.Sprintf("Registered %s (user id %s, role %s).", f.Username, res.UserID, res.Role))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.FullName, "name", "", "full name")
	fl.StringVar(&f.Username, "username", "", "username")
	fl.StringVar(&f.Email, "email", "", "email address")
	fl.StringVar(&f.PhoneNumber, "phone", "", "phone number, +92XXXXXXXXXX")
	fl.StringVar(&f.RollNo, "roll-no", "", "registration number, AB12-ABC-123")
	fl.StringVar(&role, "role", "", "STUDENT, LEAD or ADMIN (default STUDENT)")
	fl.StringVar(&f.Club, "club", "", "club slug")
	fl.StringVar(&f.Title, "title", "", "title, e.g. PRESIDENT")

	a.guard(cmd)
	return cmd
}
