package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

// Toggle returns the other theme. Anything unknown toggles to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Printer struct {
	w      io.Writer
	theme  Theme
	accent *color.Color
	muted  *color.Color
	ok     *color.Color
	bad    *color.Color
}

func New(w io.Writer, theme Theme) *Printer {
	p := &Printer{w: w}
	p.SetTheme(theme)
	return p
}

func (p *Printer) Theme() Theme { return p.theme }

func (p *Printer) SetTheme(theme Theme) {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	p.theme = theme
	if theme == ThemeDark {
		p.accent = color.New(color.FgHiCyan, color.Bold)
		p.muted = color.New(color.FgHiBlack)
		p.ok = color.New(color.FgHiGreen)
		p.bad = color.New(color.FgHiRed)
		return
	}
	p.accent = color.New(color.FgBlue, color.Bold)
	p.muted = color.New(color.Faint)
	p.ok = color.New(color.FgGreen)
	p.bad = color.New(color.FgRed)
}

func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Title(s string) {
	fmt.Fprintln(p.w, p.accent.Sprint(s))
	fmt.Fprintln(p.w, strings.Repeat("=", len([]rune(s))))
}

func (p *Printer) Section(s string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.accent.Sprint(s))
}

// Field prints "label: value" and skips empty values.
func (p *Printer) Field(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(p.w, "%-14s %s\n", label+":", value)
}

func (p *Printer) Note(msg string) {
	fmt.Fprintln(p.w, p.muted.Sprint(msg))
}

func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, p.ok.Sprint(msg))
}

func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, p.bad.Sprint(msg))
}

// Table prints rows under headers, or empty when there are no rows.
func (p *Printer) Table(headers []string, rows [][]string, empty string) {
	if len(rows) == 0 {
		p.Note(empty)
		return
	}
	t := tablewriter.NewWriter(p.w)
	t.SetHeader(headers)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetBorder(false)
	t.AppendBulk(rows)
	t.Render()
}

// clip shortens s to n runes for table cells.
func clip(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
