package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/acmchapter/chapterdesk/internal/client/api"
	"github.com/acmchapter/chapterdesk/internal/client/archive"
	"github.com/acmchapter/chapterdesk/internal/client/config"
	"github.com/acmchapter/chapterdesk/internal/client/repositories"
	"github.com/acmchapter/chapterdesk/internal/client/repositories/localstorage"
	"github.com/acmchapter/chapterdesk/internal/logging"
)

type testEnv struct {
	app        *App
	out        *bytes.Buffer
	repos      *repositories.Repositories
	archiveDir string
}

// newTestEnv builds an App against a chi backend mounted under /api. session
// is stored before the App starts, so it is rehydrated like a previous run.
func newTestEnv(t *testing.T, session map[string]string, input string, routes func(r chi.Router)) *testEnv {
	t.Helper()

	color.NoColor = true
	ctx := context.Background()

	r := chi.NewRouter()
	r.Route("/api", routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	repos, err := repositories.InitDatabase(ctx, filepath.Join(t.TempDir(), "chapterdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	for k, v := range session {
		require.NoError(t, repos.LocalStorage.SetItem(ctx, k, v))
	}

	client, err := api.New(api.Options{
		BaseURL: srv.URL + "/api",
		Timeout: 5 * time.Second,
		Tokens: api.TokenFunc(func(ctx context.Context) (string, error) {
			return repos.LocalStorage.GetItem(ctx, localstorage.KeyToken)
		}),
	})
	require.NoError(t, err)

	dir := t.TempDir()
	out := &bytes.Buffer{}
	app, err := New(ctx, Deps{
		Config:  &config.Config{},
		Repos:   repos,
		API:     client,
		Archive: archive.NewFileStore(dir),
		In:      strings.NewReader(input),
		Out:     out,
		Logger:  logging.Discard(),
	})
	require.NoError(t, err)

	return &testEnv{app: app, out: out, repos: repos, archiveDir: dir}
}

func adminSession() map[string]string {
	return map[string]string{
		localstorage.KeyToken:     "tok",
		localstorage.KeyRole:      "ADMIN",
		localstorage.KeyUserID:    "10",
		localstorage.KeyStudentID: "1",
	}
}

func (e *testEnv) run(args ...string) error {
	return e.app.Execute(context.Background(), args)
}

func (e *testEnv) item(t *testing.T, key string) string {
	t.Helper()
	v, err := e.repos.LocalStorage.GetItem(context.Background(), key)
	require.NoError(t, err)
	return v
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// stubPassword makes getPassword return pw without touching the terminal.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(string, io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

const twoStudents = `[
	{"id": 1, "user": {"id": 10, "first_name": "Ann", "last_name": "Lee", "username": "ann"}, "roll_no": "AB12-ABC-001", "club": "codehub"},
	{"id": 2, "user": {"id": 11, "first_name": "Bo", "last_name": "Khan", "username": "bo"}, "roll_no": "AB12-ABC-002", "club": "graphics_and_media"}
]`
