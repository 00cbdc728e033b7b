package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/acmchapter/chapterdesk/internal/client/forms"
	"github.com/acmchapter/chapterdesk/internal/client/models"
)

func (a *App) newMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage chapter members",
	}
	cmd.AddCommand(a.newMembersListCmd(), a.newMembersShowCmd(), a.newMembersEditCmd())
	a.guard(cmd)
	return cmd
}

func (a *App) newMembersListCmd() *cobra.Command {
	var club, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.api.ListStudents(cmd.Context())
			if err != nil {
				return err
			}
			a.out.Students(filterStudents(list, club, search))
			return nil
		},
	}
	cmd.Flags().StringVar(&club, "club", "", "only members of this club")
	cmd.Flags().StringVar(&search, "search", "", "match name, username or roll number")
	return cmd
}

func filterStudents(list []models.Student, club, search string) []models.Student {
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Student, 0, len(list))
	for _, s := range list {
		if club != "" && !strings.EqualFold(s.Club, club) {
			continue
		}
		if q != "" {
			hay := strings.ToLower(s.User.FullName() + " " + s.User.Username + " " + s.RollNo)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

func (a *App) newMembersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.api.GetStudent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.out.Student(st)
			return nil
		},
	}
}

func (a *App) newMembersEditCmd() *cobra.Command {
	var p forms.Profile

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a member; only the given fields change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.updateStudent(cmd, args[0], p)
		},
	}
	profileFlags(cmd.Flags(), &p, true)
	return cmd
}

func (a *App) updateStudent(cmd *cobra.Command, id string, p forms.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := a.api.UpdateStudent(cmd.Context(), id, p.Update(), p.Picture); err != nil {
		return err
	}
	a.out.Success("Profile updated.")
	return nil
}

// profileFlags binds the editable member fields. Role, roll number, club and
// title are only offered to managers editing other members.
func profileFlags(fl *pflag.FlagSet, p *forms.Profile, manage bool) {
	fl.StringVar(&p.FirstName, "first-name", "", "first name")
	fl.StringVar(&p.LastName, "last-name", "", "last name")
	fl.StringVar(&p.Email, "email", "", "email address")
	fl.StringVar(&p.Username, "username", "", "username")
	fl.StringVar(&p.PhoneNumber, "phone", "", "phone number, +92XXXXXXXXXX")
	fl.StringVar(&p.Password, "password", "", "new password")
	fl.StringVar(&p.ProfileDesc, "bio", "", "profile description")
	fl.StringVar(&p.Picture, "picture", "", "path to a profile picture")
	if manage {
		fl.StringVar((*string)(&p.Role), "role", "", "STUDENT, LEAD or ADMIN")
		fl.StringVar(&p.RollNo, "roll-no", "", "registration number")
		fl.StringVar(&p.Club, "club", "", "club slug")
		fl.StringVar(&p.Title, "title", "", "title")
	}
}

var errNoStudentProfile = errors.New("this account has no student profile")

func (a *App) newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or edit your own profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := a.session.Current().StudentID
			if id == "" {
				return errNoStudentProfile
			}
			st, err := a.api.GetStudent(cmd.Context(), id)
			if err != nil {
				return err
			}
			a.out.Student(st)
			return nil
		},
	}

	var p forms.Profile
	edit := &cobra.Command{
		Use:   "edit",
		Short: "Edit your profile; only the given fields change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := a.session.Current().StudentID
			if id == "" {
				return errNoStudentProfile
			}
			return a.updateStudent(cmd, id, p)
		},
	}
	profileFlags(edit.Flags(), &p, false)

	cmd.AddCommand(show, edit)
	a.guard(cmd)
	return cmd
}

func (a *App) newTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "Show the public team roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.api.ListPublicStudents(cmd.Context())
			if err != nil {
				return err
			}
			a.out.Team(list)
			return nil
		},
	}
}
