package forms

import (
	"strings"

	"github.com/acmchapter/chapterdesk/internal/client/api"
	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// Event is the create/edit event form. Times may be typed as 24-hour or
// 12-hour; hosts and tags are comma-separated.
type Event struct {
	Title       string   `label:"title" validate:"required,max=100"`
	Content     string   `label:"content" validate:"required"`
	Description string   `label:"description"`
	Date        string   `label:"date" validate:"required,datetime=2006-01-02"`
	TimeFrom    string   `label:"start time"`
	TimeTo      string   `label:"end time"`
	Location    string   `label:"location"`
	TotalSeats  string   `label:"total seats" validate:"omitempty,number"`
	EventType   string   `label:"event type" validate:"omitempty,number"`
	Hosts       string   `label:"hosts"`
	Tags        string   `label:"tags"`
	Images      []string `label:"images" validate:"dive,file"`
}

func (e Event) Validate() error {
	var extra []string
	if e.TimeFrom != "" && ClockTo24Hour(e.TimeFrom) == "" {
		extra = append(extra, "start time must be HH:MM or H:MM AM/PM")
	}
	if e.TimeTo != "" && ClockTo24Hour(e.TimeTo) == "" {
		extra = append(extra, "end time must be HH:MM or H:MM AM/PM")
	}
	return check(e, extra...)
}

func (e Event) Payload() api.EventDraft {
	return api.EventDraft{
		Title:       e.Title,
		Content:     e.Content,
		Description: e.Description,
		Date:        e.Date,
		TimeFrom:    ClockTo24Hour(e.TimeFrom),
		TimeTo:      ClockTo24Hour(e.TimeTo),
		Location:    e.Location,
		TotalSeats:  e.TotalSeats,
		EventType:   e.EventType,
		Hosts:       models.SplitList(e.Hosts),
		Tags:        models.SplitList(e.Tags),
		Images:      e.Images,
	}
}

// EventFromModel pre-fills the edit form from an existing event.
func EventFromModel(ev models.Event) Event {
	return Event{
		Title:       ev.Title,
		Content:     ev.Content,
		Description: ev.Description,
		Date:        ev.Date,
		TimeFrom:    ClockTo24Hour(ev.TimeFrom),
		TimeTo:      ClockTo24Hour(ev.TimeTo),
		Location:    ev.Location,
		TotalSeats:  ev.TotalSeats.String(),
		EventType:   ev.EventTypeID(),
		Hosts:       strings.Join(models.CleanList(ev.Hosts), ", "),
		Tags:        strings.Join(models.CleanList(ev.Tags), ", "),
	}
}
