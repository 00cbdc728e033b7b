// Package markup turns Markdown blog bodies into the HTML the blog API stores,
// and back into plain text for the terminal.
package markup

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Raw HTML in the input is escaped; WithUnsafe is not set.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// ToHTML renders a Markdown body. Input that already looks like HTML (a body
// fetched from the server for editing) is returned unchanged.
func ToHTML(body string) (string, error) {
	if IsHTML(body) {
		return body, nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

func IsHTML(body string) bool {
	return strings.HasPrefix(strings.TrimSpace(body), "<")
}

// LocalImages lists image destinations that are not URLs, in document order
// and without duplicates. These are files on disk that have to be uploaded.
func LocalImages(body string) []string {
	src := []byte(body)
	doc := md.Parser().Parse(text.NewReader(src))

	var out []string
	seen := map[string]bool{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}
		dest := string(img.Destination)
		if dest == "" || isRemote(dest) || seen[dest] {
			return ast.WalkContinue, nil
		}
		seen[dest] = true
		out = append(out, dest)
		return ast.WalkContinue, nil
	})
	return out
}

// ReplaceImages points every image link found in urls at its uploaded URL.
func ReplaceImages(body string, urls map[string]string) string {
	for local, remote := range urls {
		body = strings.ReplaceAll(body, "]("+local+")", "]("+remote+")")
		body = strings.ReplaceAll(body, "]("+local+" ", "]("+remote+" ")
	}
	return body
}

func isRemote(dest string) bool {
	d := strings.ToLower(dest)
	return strings.HasPrefix(d, "http://") || strings.HasPrefix(d, "https://") || strings.HasPrefix(d, "data:")
}

var blankRun = regexp.MustCompile(`\n{3,}`)

var blockAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Pre: true, atom.Tr: true, atom.Table: true, atom.Hr: true,
}

// PlainText strips markup from an HTML body for display. Block elements
// start on a new paragraph and <br> breaks the line.
func PlainText(body string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(body))
	skip := 0
	afterBr := false
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tok := z.Token()
		switch tt {
		case html.TextToken:
			if skip > 0 {
				continue
			}
			data := tok.Data
			if afterBr {
				data = strings.TrimPrefix(data, "\n")
			}
			b.WriteString(data)
			afterBr = false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			switch {
			case tok.DataAtom == atom.Script || tok.DataAtom == atom.Style:
				if tt == html.StartTagToken {
					skip++
				} else if tt == html.EndTagToken && skip > 0 {
					skip--
				}
			case tok.DataAtom == atom.Br:
				b.WriteString("\n")
				afterBr = true
			case blockAtoms[tok.DataAtom]:
				b.WriteString("\n")
				afterBr = false
			}
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	s := strings.Join(lines, "\n")
	s = blankRun.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
