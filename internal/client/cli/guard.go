package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/acmchapter/chapterdesk/internal/client/repositories/localstorage"
)

// requireAuth lets a command run only when local storage holds a token.
// Otherwise it returns a redirect to login carrying the refused command path.
func (a *App) requireAuth(cmd *cobra.Command, _ []string) error {
	token, err := a.repos.LocalStorage.GetItem(cmd.Context(), localstorage.KeyToken)
	if err != nil {
		return err
	}
	if token == "" {
		return &RedirectError{To: "login", From: commandPath(cmd)}
	}
	return nil
}

// guard installs requireAuth on cmds and, through cobra's persistent hooks,
// on everything below them.
func (a *App) guard(cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.PersistentPreRunE = a.requireAuth
	}
}

// commandPath is the command path without the binary name.
func commandPath(cmd *cobra.Command) string {
	return strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()+" ")
}

// newDashboardCmd lands on the role's home section: members for admins and
// leads, the blog list for everyone else.
func (a *App) newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open your dashboard home",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home := a.session.Current().DashboardHome()
			return a.Execute(cmd.Context(), []string{home, "list"})
		},
	}
	a.guard(cmd)
	return cmd
}
