package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acmchapter/chapterdesk/internal/client/forms"
	"github.com/acmchapter/chapterdesk/internal/client/repositories/localstorage"
	"github.com/acmchapter/chapterdesk/internal/client/services"
	"github.com/acmchapter/chapterdesk/internal/client/view"
)

func (a *App) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search blogs and events",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.search.Search(cmd.Context(), strings.Join(args, " "))
			if errors.Is(err, services.ErrEmptyQuery) {
				return forms.ValidationErrors{"search query is empty"}
			}
			if err != nil {
				return err
			}
			a.out.Title(fmt.Sprintf("Results for %q", res.Query))
			a.out.SearchResults(res)
			return nil
		},
	}
}

// newThemeCmd toggles the theme, or sets it when one is named. The choice is
// persisted for the next run.
func (a *App) newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Switch between the light and dark palette",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(view.ThemeLight), string(view.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			next := a.out.Theme().Toggle()
			if len(args) == 1 {
				th, ok := view.ParseTheme(args[0])
				if !ok {
					return forms.ValidationErrors{fmt.Sprintf("unknown theme %q, want light or dark", args[0])}
				}
				next = th
			}

			if err := a.repos.LocalStorage.SetItem(cmd.Context(), localstorage.KeyTheme, string(next)); err != nil {
				return fmt.Errorf("save theme: %w", err)
			}
			a.out.SetTheme(next)
			a.out.Success(fmt.Sprintf("Theme set to %s.", next))
			return nil
		},
	}
}
