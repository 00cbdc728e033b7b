package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

func (c *Client) CreateMeeting(ctx context.Context, m models.MeetingCreate) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/meetings/create/", JSON: m}, nil)
}

func (c *Client) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	var out []models.Meeting
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/meetings/"}, &out)
	return out, err
}

func (c *Client) GetMeeting(ctx context.Context, id string) (models.Meeting, error) {
	var out models.Meeting
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: fmt.Sprintf("/meetings/%s/", url.PathEscape(id))}, &out)
	return out, err
}

func (c *Client) UpdateMeeting(ctx context.Context, id string, m models.MeetingUpdate) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: fmt.Sprintf("/meetings/%s/", url.PathEscape(id)), JSON: m}, nil)
}

func (c *Client) DeleteMeeting(ctx context.Context, id string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: fmt.Sprintf("/meetings/%s/", url.PathEscape(id))}, nil)
}

func (c *Client) MeetingAttendance(ctx context.Context, id string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: fmt.Sprintf("/meetings/%s/attendance/", url.PathEscape(id))}, &out)
	return out, err
}

// UpdateAttendance replaces one attendance record. The route has no trailing
// slash.
func (c *Client) UpdateAttendance(ctx context.Context, meetingID string, rec models.AttendanceRecord) error {
	return c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/meetings/%s/attendance/%d", url.PathEscape(meetingID), rec.ID),
		JSON:   rec,
	}, nil)
}

// MeetingPDF downloads the meeting report.
func (c *Client) MeetingPDF(ctx context.Context, id string) (*Download, error) {
	return c.Download(ctx,
		Request{Method: http.MethodGet, Path: fmt.Sprintf("/meetings/%s/pdf/", url.PathEscape(id))},
		fmt.Sprintf("meeting_%s.pdf", id))
}
