package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// newTestClient serves routes under /api and returns a client pointed at it
// holding token (empty means logged out).
func newTestClient(t *testing.T, token string, routes func(r chi.Router)) *Client {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/api", routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := New(Options{
		BaseURL: srv.URL + "/api",
		Timeout: 5 * time.Second,
		Tokens:  TokenFunc(func(context.Context) (string, error) { return token, nil }),
	})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
