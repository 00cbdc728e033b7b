package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// BillDraft is the multipart payload for a bill. Receipt is an image path,
// required on create and optional on edit.
type BillDraft struct {
	Description string
	Amount      string
	Date        string
	Receipt     string
}

func (d BillDraft) form() *Form {
	f := NewForm().
		Set("description", d.Description).
		Set("amount", d.Amount).
		Set("date", d.Date)
	if d.Receipt != "" {
		f.AddFile("image", d.Receipt)
	}
	return f
}

func (c *Client) ListBills(ctx context.Context) ([]models.Bill, error) {
	var out []models.Bill
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/bills/"}, &out)
	return out, err
}

func (c *Client) GetBill(ctx context.Context, id string) (models.Bill, error) {
	var out models.Bill
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: fmt.Sprintf("/bills/%s/", url.PathEscape(id))}, &out)
	return out, err
}

func (c *Client) CreateBill(ctx context.Context, d BillDraft) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/bills/", Form: d.form()}, nil)
}

func (c *Client) UpdateBill(ctx context.Context, id string, d BillDraft) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: fmt.Sprintf("/bills/%s/", url.PathEscape(id)), Form: d.form()}, nil)
}

func (c *Client) DeleteBill(ctx context.Context, id string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: fmt.Sprintf("/bills/%s/", url.PathEscape(id))}, nil)
}
