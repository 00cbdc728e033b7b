package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/acmchapter/chapterdesk/internal/client/api"
	"github.com/acmchapter/chapterdesk/internal/client/forms"
	"github.com/acmchapter/chapterdesk/internal/client/models"
)

func (a *App) newRecruitmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recruitment",
		Short: "Review recruitment applications",
	}
	cmd.AddCommand(
		a.newRecruitmentSessionCmd(),
		a.newRecruitmentListCmd(),
		a.newRecruitmentShowCmd(),
		a.newRecruitmentStatusCmd(),
		a.newRecruitmentStatsCmd(),
		a.newRecruitmentExportCmd(),
	)
	a.guard(cmd)
	return cmd
}

// sessionID returns id, or the active session's id when id is 0.
func (a *App) sessionID(ctx context.Context, id int) (int, error) {
	if id != 0 {
		return id, nil
	}
	s, err := a.api.ActiveRecruitmentSession(ctx)
	if err != nil {
		return 0, fmt.Errorf("active recruitment session: %w", err)
	}
	return s.ID, nil
}

func parseStatus(s string) (models.ApplicationStatus, error) {
	if s == "" {
		return "", nil
	}
	st, ok := models.ParseApplicationStatus(s)
	if !ok {
		return "", forms.ValidationErrors{fmt.Sprintf("unknown status %q, want UNDER_REVIEW, INTERVIEWS, ACCEPTED or REJECTED", s)}
	}
	return st, nil
}

func (a *App) newRecruitmentSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the active recruitment session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.api.ActiveRecruitmentSession(cmd.Context())
			if err != nil {
				return err
			}
			a.out.RecruitmentSession(s)
			return nil
		},
	}
}

func (a *App) newRecruitmentListCmd() *cobra.Command {
	var (
		session        int
		status, search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications of a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := parseStatus(status)
			if err != nil {
				return err
			}
			id, err := a.sessionID(ctx, session)
			if err != nil {
				return err
			}
			list, err := a.api.ListApplications(ctx, id)
			if err != nil {
				return err
			}
			a.out.Applications(filterApplications(list, st, search))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&session, "session", 0, "session id (default the active one)")
	fl.StringVar(&status, "status", "", "only applications in this status")
	fl.StringVar(&search, "search", "", "match name, email, registration number or role")
	return cmd
}

// filterApplications keeps applications in status (any when empty) that
// match search. Statuses are compared after normalisation.
func filterApplications(list []models.Application, status models.ApplicationStatus, search string) []models.Application {
	out := make([]models.Application, 0, len(list))
	for _, app := range list {
		if status != "" && models.NormalizeStatus(string(app.Status)) != string(status) {
			continue
		}
		if !app.Matches(search) {
			continue
		}
		out = append(out, app)
	}
	return out
}

func (a *App) newRecruitmentShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <application-id>",
		Short: "Show an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := a.api.GetApplication(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.out.Application(app)
			return nil
		},
	}
}

func (a *App) newRecruitmentStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <application-id> <status>",
		Short: "Move an application to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseStatus(args[1])
			if err != nil {
				return err
			}
			if st == "" {
				return forms.ValidationErrors{"status is required"}
			}
			if err := a.api.UpdateApplicationStatus(cmd.Context(), args[0], st); err != nil {
				return err
			}
			a.out.Success(fmt.Sprintf("Application %s is now %s.", args[0], st.Label()))
			return nil
		},
	}
}

func (a *App) newRecruitmentStatsCmd() *cobra.Command {
	var session int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count applications per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			id, err := a.sessionID(ctx, session)
			if err != nil {
				return err
			}
			entries, err := a.api.ListApplicationStatuses(ctx)
			if err != nil {
				return err
			}
			a.out.RecruitmentStats(models.CountStatuses(entries, id))
			return nil
		},
	}
	cmd.Flags().IntVar(&session, "session", 0, "session id (default the active one)")
	return cmd
}

func (a *App) newRecruitmentExportCmd() *cobra.Command {
	var role, status string

	cmd := &cobra.Command{
		Use:   "export [session-id]",
		Short: "Download the applications spreadsheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var given int
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return forms.ValidationErrors{fmt.Sprintf("session id must be a positive number, got %q", args[0])}
				}
				given = n
			}
			st, err := parseStatus(status)
			if err != nil {
				return err
			}
			id, err := a.sessionID(ctx, given)
			if err != nil {
				return err
			}

			dl, err := a.api.ExportApplications(ctx, api.ExportFilter{SessionID: id, PreferredRole: role, Status: st})
			if err != nil {
				return err
			}
			return a.saveDownload(ctx, dl)
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "only applicants preferring this role")
	cmd.Flags().StringVar(&status, "status", "", "only applications in this status")
	return cmd
}
