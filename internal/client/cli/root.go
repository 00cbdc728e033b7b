package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/acmchapter/chapterdesk/internal/buildinfo"
)

// newRootCmd builds a fresh command tree. A new tree per invocation keeps
// flag values from leaking between REPL lines.
func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chapterdesk",
		Short:         "Chapter management from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(
		a.newLoginCmd(),
		a.newLogoutCmd(),
		a.newOTPCmd(),
		a.newResetPasswordCmd(),
		a.newSignupCmd(),
		a.newDashboardCmd(),
		a.newMembersCmd(),
		a.newProfileCmd(),
		a.newTeamCmd(),
		a.newAttendanceCmd(),
		a.newBlogsCmd(),
		a.newEventsCmd(),
		a.newBillsCmd(),
		a.newRecruitmentCmd(),
		a.newSearchCmd(),
		a.newThemeCmd(),
		a.newVersionCmd(),
		a.newExitCmd(),
	)

	root.SetOut(a.out.Writer())
	root.SetErr(a.out.Writer())
	return root
}

// Execute runs one command line against a fresh command tree.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(a.out.Writer())
		},
	}
}

func (a *App) newExitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "exit",
		Aliases: []string{"quit"},
		Short:   "Leave the interactive shell",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return errExit
		},
	}
}

func isExit(err error) bool {
	return errors.Is(err, errExit)
}
