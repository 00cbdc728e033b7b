package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls    [][]string
	reported []error
	errFor   map[string]error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Execute(ctx context.Context, args []string) error {
	f.calls = append(f.calls, args)
	switch args[0] {
	case "exit", "quit":
		return errExit
	case "login":
		f.loggedIn = true
	case "logout":
		f.loggedIn = false
	}
	return f.errFor[args[0]]
}

func (f *fakeExec) report(err error) { f.reported = append(f.reported, err) }

func TestRunREPL_ExecutesLinesInOrder(t *testing.T) {
	input := strings.Join([]string{
		"login --username alice",
		"",
		`blogs write --title "Hello world"`,
		"members list",
		"exit",
		"members list",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)), &out)

	want := [][]string{
		{"login", "--username", "alice"},
		{"blogs", "write", "--title", "Hello world"},
		{"members", "list"},
		{"exit"},
	}
	assert.Equal(t, want, exec.calls)
	assert.Contains(t, out.String(), "Bye!")
	assert.Empty(t, exec.reported)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\n")), &out)

	text := out.String()
	first := strings.Index(text, "Available commands")
	last := strings.LastIndex(text, "Available commands")
	require.NotEqual(t, first, last, "help printed twice")

	assert.NotContains(t, text[first:last], "attendance mark")
	assert.Contains(t, text[last:], "attendance mark")
	assert.Equal(t, [][]string{{"login"}}, exec.calls, "bare help never reaches cobra")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	boom := errors.New("boom")
	exec := &fakeExec{loggedIn: true, errFor: map[string]error{
		"bills":  boom,
		"events": context.Canceled,
	}}

	input := "bills list\nevents list\nsay \"unterminated\nteam\n"
	runREPL(context.Background(), exec, func() string { return "(ADMIN) " }, bufio.NewReader(strings.NewReader(input)), &bytes.Buffer{})

	require.Len(t, exec.reported, 2)
	assert.ErrorIs(t, exec.reported[0], boom)
	assert.ErrorIs(t, exec.reported[1], ErrBadLine)
	assert.Equal(t, []string{"team"}, exec.calls[len(exec.calls)-1])
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	var out bytes.Buffer
	runREPL(context.Background(), &fakeExec{}, func() string { return "(LEAD codehub) " }, bufio.NewReader(strings.NewReader("")), &out)
	assert.Contains(t, out.String(), "chapterdesk (LEAD codehub) > ")
}

func TestRunREPL_UsesPrintSeam(t *testing.T) {
	orig := printFn
	var printed int
	printFn = func(w io.Writer, a ...any) (int, error) { printed++; return 0, nil }
	t.Cleanup(func() { printFn = orig })

	var out bytes.Buffer
	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nquit\n")), &out)

	assert.Empty(t, out.String())
	assert.GreaterOrEqual(t, printed, 3)
}
