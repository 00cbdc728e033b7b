package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printFn is a test seam for REPL chrome (prompt, greeting, help).
var printFn = fmt.Fprint

// execIface is the command surface the REPL drives. The real App satisfies
// it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Execute(ctx context.Context, args []string) error
	report(err error)
}

// Root greets the user and runs the REPL until exit or end of input.
func (a *App) Root(ctx context.Context) {
	w := a.out.Writer()
	printFn(w, "Welcome to chapterdesk (type 'help' for commands)\n")
	runREPL(ctx, a, a.getStatus, a.reader, w)
}

// getStatus renders the prompt badge: the role (and club for leads) when
// logged in.
func (a *App) getStatus() string {
	s := a.session.Current()
	if !s.IsAuthenticated() {
		return ""
	}
	badge := string(s.Role)
	if s.Club != "" {
		badge += " " + s.Club
	}
	return "(" + strings.TrimSpace(badge) + ") "
}

// runREPL starts a simple read–eval–print loop for the chapterdesk CLI.
//
// Each line is split into arguments (quotes group words) and executed
// against a fresh command tree. "help" without arguments lists the commands
// relevant to the current session; "help <command>" and "<command> --help"
// show cobra's usage. The loop exits on end of input or on exit/quit.
//
// Command errors are reported and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		printFn(w, fmt.Sprintf("chapterdesk %s> ", statusFn()))

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			printFn(w, "\n")
			return
		}

		args, perr := splitLine(strings.TrimSpace(line))
		switch {
		case perr != nil:
			a.report(perr)
		case len(args) == 0:
		case len(args) == 1 && args[0] == "help":
			printFn(w, helpText(a.isLoggedIn()))
		default:
			err := a.Execute(ctx, args)
			if isExit(err) {
				printFn(w, "Bye!\n")
				return
			}
			if err != nil && !errors.Is(err, context.Canceled) {
				a.report(err)
			}
		}

		if err != nil {
			return
		}
	}
}

func helpText(loggedIn bool) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	b.WriteString("  events list|show, blogs list|show, team, search <query>\n")
	b.WriteString("  theme [light|dark], version, help [command], exit\n")
	if loggedIn {
		b.WriteString("  dashboard, profile show|edit, logout\n")
		b.WriteString("  members list|show|edit, signup, otp, reset-password\n")
		b.WriteString("  attendance mark|history|show|edit|edit-meeting|delete|pdf\n")
		b.WriteString("  blogs mine|admin|write|edit|delete\n")
		b.WriteString("  events create|edit|delete|delete-image|types\n")
		b.WriteString("  bills list|show|create|edit|delete\n")
		b.WriteString("  recruitment session|list|show|status|stats|export\n")
	} else {
		b.WriteString("  login, otp, reset-password\n")
	}
	return b.String()
}
