package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

type EventImage struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

// Event as listed by GET /events/. Older events carry only title, content,
// date and images; the remaining fields are optional.
type Event struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	TimeFrom    string          `json:"time_from"`
	TimeTo      string          `json:"time_to"`
	Location    string          `json:"location"`
	TotalSeats  json.Number     `json:"total_seats,omitempty"`
	EventType   json.RawMessage `json:"event_type,omitempty"`
	Hosts       []string        `json:"hosts"`
	Tags        []string        `json:"tags"`
	Image       string          `json:"image"`
	Images      []EventImage    `json:"images"`
}

// EventType is an entry of GET /events/types/.
type EventType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EventTypeID extracts the type id whether the API sent an object or a bare id.
func (e Event) EventTypeID() string {
	raw := strings.TrimSpace(string(e.EventType))
	if raw == "" || raw == "null" {
		return ""
	}
	var obj EventType
	if err := json.Unmarshal(e.EventType, &obj); err == nil && obj.ID != 0 {
		return strconv.Itoa(obj.ID)
	}
	return strings.Trim(raw, `"`)
}

// CleanList unwraps list items that were double-encoded as JSON arrays and
// drops blanks. ["[\"a\"]", "b", " "] becomes [a b].
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.HasPrefix(item, "[") {
			var inner []string
			if err := json.Unmarshal([]byte(item), &inner); err == nil {
				if len(inner) == 0 {
					continue
				}
				item = inner[0]
			}
		}
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}

// SplitList turns "a, b,,c" into [a b c].
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
