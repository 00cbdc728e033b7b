package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// BlogDraft is the content of a new or edited blog post. Cover is an optional
// image path sent as "images".
type BlogDraft struct {
	Title   string
	Content string
	Cover   string
}

func (d BlogDraft) form() *Form {
	f := NewForm().Set("title", d.Title).Set("content", d.Content)
	if d.Cover != "" {
		f.AddFile("images", d.Cover)
	}
	return f
}

// ListBlogs lists blogs; a non-empty search filters server-side.
func (c *Client) ListBlogs(ctx context.Context, search string) ([]models.Blog, error) {
	req := Request{Method: http.MethodGet, Path: "/blogs/"}
	if search != "" {
		req.Query = url.Values{"search": {search}}
	}
	var out []models.Blog
	err := c.Do(ctx, req, &out)
	return out, err
}

func (c *Client) CreateBlog(ctx context.Context, d BlogDraft) (models.Blog, error) {
	var out models.Blog
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/blogs/upload/", Form: d.form()}, &out)
	return out, err
}

func (c *Client) UpdateBlog(ctx context.Context, id string, d BlogDraft) (models.Blog, error) {
	var out models.Blog
	err := c.Do(ctx, Request{Method: http.MethodPut, Path: fmt.Sprintf("/blogs/%s/edit/", url.PathEscape(id)), Form: d.form()}, &out)
	return out, err
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: fmt.Sprintf("/blogs/%s/delete/", url.PathEscape(id))}, nil)
}

// UploadInlineImage uploads an image for embedding in a post and returns its URL.
func (c *Client) UploadInlineImage(ctx context.Context, path string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/blogs/upload-inline-image/",
		Form:   NewForm().AddFile("image", path),
	}, &out)
	return out.URL, err
}
