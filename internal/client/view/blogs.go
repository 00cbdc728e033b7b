package view

import (
	"fmt"
	"strconv"

	"github.com/acmchapter/chapterdesk/internal/client/markup"
	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// BlogAuthor prefers the author object, then the flat createdBy name.
func BlogAuthor(b models.Blog) string {
	if b.CreatedBy.Username != "" {
		return b.CreatedBy.Username
	}
	return b.Author
}

func (p *Printer) Blogs(list []models.Blog) {
	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{
			strconv.Itoa(b.ID),
			clip(b.Title, 50),
			BlogAuthor(b),
			shortDate(b.CreatedAt),
		})
	}
	p.Table([]string{"ID", "TITLE", "AUTHOR", "CREATED"}, rows, "No blogs found.")
}

func (p *Printer) Blog(b models.Blog) {
	p.Title(b.Title)
	p.Field("ID", strconv.Itoa(b.ID))
	p.Field("Author", BlogAuthor(b))
	p.Field("Created", shortDate(b.CreatedAt))
	if b.UpdatedAt != b.CreatedAt {
		p.Field("Updated", shortDate(b.UpdatedAt))
	}
	for i, img := range b.Images {
		p.Field(fmt.Sprintf("Image %d", i+1), img.ImageURL)
	}
	p.Println()
	p.Println(markup.PlainText(b.Content))
}

// shortDate keeps the date part of an ISO-8601 timestamp.
func shortDate(ts string) string {
	if len(ts) >= 10 && ts[4] == '-' && ts[7] == '-' {
		return ts[:10]
	}
	return ts
}
