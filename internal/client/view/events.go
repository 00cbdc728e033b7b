package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/acmchapter/chapterdesk/internal/client/markup"
	"github.com/acmchapter/chapterdesk/internal/client/models"
)

func (p *Printer) Events(list []models.Event) {
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			clip(e.Title, 40),
			e.Date,
			eventTime(e),
			e.Location,
		})
	}
	p.Table([]string{"ID", "TITLE", "DATE", "TIME", "LOCATION"}, rows, "No events found.")
}

func (p *Printer) Event(e models.Event) {
	p.Title(e.Title)
	p.Field("ID", strconv.Itoa(e.ID))
	p.Field("Date", e.Date)
	p.Field("Time", eventTime(e))
	p.Field("Location", e.Location)
	p.Field("Seats", e.TotalSeats.String())
	p.Field("Type", e.EventTypeID())
	p.Field("Hosts", strings.Join(models.CleanList(e.Hosts), ", "))
	p.Field("Tags", strings.Join(models.CleanList(e.Tags), ", "))
	p.Field("Cover", e.Image)
	for _, img := range e.Images {
		p.Field(fmt.Sprintf("Image %d", img.ID), img.Image)
	}

	if e.Description != "" {
		p.Section("Description")
		p.Println(markup.PlainText(e.Description))
	}
	if e.Content != "" {
		p.Section("Details")
		p.Println(markup.PlainText(e.Content))
	}
}

func (p *Printer) EventTypes(list []models.EventType) {
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{strconv.Itoa(t.ID), t.Name})
	}
	p.Table([]string{"ID", "NAME"}, rows, "No event types defined.")
}

func eventTime(e models.Event) string {
	switch {
	case e.TimeFrom != "" && e.TimeTo != "":
		return e.TimeFrom + " - " + e.TimeTo
	default:
		return e.TimeFrom
	}
}
