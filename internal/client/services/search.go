package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// SearchClient is the part of the API the search fans out to.
type SearchClient interface {
	ListBlogs(ctx context.Context, search string) ([]models.Blog, error)
	ListEvents(ctx context.Context, search string) ([]models.Event, error)
}

// SearchResults holds both halves of a search. A side that failed has its
// error set and an empty list.
type SearchResults struct {
	Query     string
	Blogs     []models.Blog
	Events    []models.Event
	BlogsErr  error
	EventsErr error
}

var ErrEmptyQuery = errors.New("search query is empty")

type SearchService struct {
	client SearchClient
}

func NewSearchService(c SearchClient) *SearchService {
	return &SearchService{client: c}
}

// Search queries blogs and events concurrently. It fails only when both
// sides fail.
func (s *SearchService) Search(ctx context.Context, query string) (SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResults{}, ErrEmptyQuery
	}

	res := SearchResults{Query: query}

	var g errgroup.Group
	g.Go(func() error {
		res.Blogs, res.BlogsErr = s.client.ListBlogs(ctx, query)
		if res.BlogsErr != nil {
			res.Blogs = nil
		}
		return res.BlogsErr
	})
	g.Go(func() error {
		res.Events, res.EventsErr = s.client.ListEvents(ctx, query)
		if res.EventsErr != nil {
			res.Events = nil
		}
		return res.EventsErr
	})
	_ = g.Wait()

	if res.BlogsErr != nil && res.EventsErr != nil {
		return res, fmt.Errorf("search %q: %w", query, errors.Join(res.BlogsErr, res.EventsErr))
	}
	return res, nil
}
