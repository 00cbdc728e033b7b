package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

func (c *Client) ActiveRecruitmentSession(ctx context.Context) (models.RecruitmentSession, error) {
	var out models.RecruitmentSession
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/recruitment/active-session/"}, &out)
	return out, err
}

// ListApplications lists applications of a session. Status filtering is done
// by the caller after normalisation.
func (c *Client) ListApplications(ctx context.Context, sessionID int) ([]models.Application, error) {
	var out []models.Application
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/recruitment/application-review/",
		Query:  url.Values{"recruitment_session": {strconv.Itoa(sessionID)}},
	}, &out)
	return out, err
}

func (c *Client) GetApplication(ctx context.Context, id string) (models.Application, error) {
	var out models.Application
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: fmt.Sprintf("/recruitment/application-review/%s/", url.PathEscape(id))}, &out)
	return out, err
}

func (c *Client) ListApplicationStatuses(ctx context.Context) ([]models.ApplicationStatusEntry, error) {
	var out []models.ApplicationStatusEntry
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/recruitment/application-status/"}, &out)
	return out, err
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	return c.Do(ctx, Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/recruitment/application-status/%s/", url.PathEscape(id)),
		JSON:   map[string]string{"status": string(status)},
	}, nil)
}

// ExportFilter narrows a recruitment export. Empty fields are not sent.
type ExportFilter struct {
	SessionID     int
	PreferredRole string
	Status        models.ApplicationStatus
}

// ExportApplications downloads the spreadsheet export for a session.
func (c *Client) ExportApplications(ctx context.Context, f ExportFilter) (*Download, error) {
	q := url.Values{"session_id": {strconv.Itoa(f.SessionID)}}
	if f.PreferredRole != "" {
		q.Set("preferred_role", f.PreferredRole)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	return c.Download(ctx,
		Request{Method: http.MethodGet, Path: "/recruitment/export/excel/", Query: q},
		fmt.Sprintf("recruitment_export_session_%d.xlsx", f.SessionID))
}
