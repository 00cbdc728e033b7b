package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// EventDraft is the multipart payload for creating or editing an event.
// Empty optional fields are omitted. Times are HH:MM.
type EventDraft struct {
	Title       string
	Content     string
	Description string
	Date        string
	TimeFrom    string
	TimeTo      string
	Location    string
	TotalSeats  string
	EventType   string
	Hosts       []string
	Tags        []string
	Images      []string
	// ImageField names the file part; creation uses "images", edits "image".
	ImageField string
}

func (d EventDraft) form() (*Form, error) {
	f := NewForm().
		Set("title", d.Title).
		Set("content", d.Content).
		Set("date", d.Date).
		SetIf("description", d.Description).
		SetIf("time_from", d.TimeFrom).
		SetIf("time_to", d.TimeTo).
		SetIf("location", d.Location).
		SetIf("total_seats", d.TotalSeats).
		SetIf("event_type", d.EventType)

	lists := []struct {
		name  string
		items []string
	}{{"hosts", d.Hosts}, {"tags", d.Tags}}
	for _, l := range lists {
		if len(l.items) == 0 {
			continue
		}
		b, err := json.Marshal(l.items)
		if err != nil {
			return nil, err
		}
		f.Set(l.name, string(b))
	}

	field := d.ImageField
	if field == "" {
		field = "images"
	}
	for _, img := range d.Images {
		f.AddFile(field, img)
	}
	return f, nil
}

// ListEvents lists events; a non-empty search filters server-side.
func (c *Client) ListEvents(ctx context.Context, search string) ([]models.Event, error) {
	req := Request{Method: http.MethodGet, Path: "/events/"}
	if search != "" {
		req.Query = url.Values{"search": {search}}
	}
	var out []models.Event
	err := c.Do(ctx, req, &out)
	return out, err
}

func (c *Client) GetEvent(ctx context.Context, id string) (models.Event, error) {
	var out models.Event
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: fmt.Sprintf("/events/%s/", url.PathEscape(id))}, &out)
	return out, err
}

func (c *Client) ListEventTypes(ctx context.Context) ([]models.EventType, error) {
	var out []models.EventType
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/events/types/"}, &out)
	return out, err
}

func (c *Client) CreateEvent(ctx context.Context, d EventDraft) error {
	f, err := d.form()
	if err != nil {
		return err
	}
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/events/", Form: f}, nil)
}

func (c *Client) UpdateEvent(ctx context.Context, id string, d EventDraft) error {
	if d.ImageField == "" {
		d.ImageField = "image"
	}
	f, err := d.form()
	if err != nil {
		return err
	}
	return c.Do(ctx, Request{Method: http.MethodPut, Path: fmt.Sprintf("/events/%s/", url.PathEscape(id)), Form: f}, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: fmt.Sprintf("/events/%s/", url.PathEscape(id))}, nil)
}

// DeleteEventImage removes one image; the route has no trailing slash.
func (c *Client) DeleteEventImage(ctx context.Context, eventID, imageID string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: fmt.Sprintf("/events/%s/image/%s", url.PathEscape(eventID), url.PathEscape(imageID))}, nil)
}
