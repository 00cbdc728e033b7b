package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/acmchapter/chapterdesk/internal/client/api"
	"github.com/acmchapter/chapterdesk/internal/client/archive"
	"github.com/acmchapter/chapterdesk/internal/client/config"
	"github.com/acmchapter/chapterdesk/internal/client/repositories"
	"github.com/acmchapter/chapterdesk/internal/client/repositories/localstorage"
	"github.com/acmchapter/chapterdesk/internal/client/services"
	"github.com/acmchapter/chapterdesk/internal/client/view"
	"github.com/acmchapter/chapterdesk/internal/logging"
)

type App struct {
	config  *config.Config
	repos   *repositories.Repositories
	api     *api.Client
	session services.SessionService
	search  *services.SearchService
	archive archive.Store
	out     *view.Printer
	reader  *bufio.Reader
	log     logging.Logger
}

// Deps are the collaborators an App is assembled from.
type Deps struct {
	Config  *config.Config
	Repos   *repositories.Repositories
	API     *api.Client
	Archive archive.Store
	In      io.Reader
	Out     io.Writer
	Logger  logging.Logger
}

// NewApp opens local storage, builds the API client and the export archive
// from c, and restores the previous session.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, err := repositories.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}

	client, err := api.New(api.Options{
		BaseURL:   c.APIBaseURL,
		Timeout:   c.RequestTimeout,
		RateLimit: c.RateLimit,
		Logger:    log,
		Tokens: api.TokenFunc(func(ctx context.Context) (string, error) {
			return repos.LocalStorage.GetItem(ctx, localstorage.KeyToken)
		}),
	})
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	store, err := archive.New(ctx, archive.Options{
		Dir:       c.ArchiveDir,
		Bucket:    c.ArchiveBucket,
		Region:    c.ArchiveRegion,
		Endpoint:  c.ArchiveEndpoint,
		AccessKey: c.ArchiveAccessKey,
		SecretKey: c.ArchiveSecretKey,
	})
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	return New(ctx, Deps{
		Config:  c,
		Repos:   repos,
		API:     client,
		Archive: store,
		In:      os.Stdin,
		Out:     os.Stdout,
		Logger:  log,
	})
}

// New assembles an App from ready collaborators and rehydrates the session
// and theme from local storage.
func New(ctx context.Context, d Deps) (*App, error) {
	a := &App{
		config:  d.Config,
		repos:   d.Repos,
		api:     d.API,
		session: services.NewSessionService(d.API, d.Repos, d.Logger),
		search:  services.NewSearchService(d.API),
		archive: d.Archive,
		out:     view.New(d.Out, view.ThemeLight),
		reader:  bufio.NewReader(d.In),
		log:     d.Logger,
	}

	if err := a.session.Rehydrate(ctx); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	theme, err := a.repos.LocalStorage.GetItem(ctx, localstorage.KeyTheme)
	if err != nil {
		return nil, fmt.Errorf("restore theme: %w", err)
	}
	if th, ok := view.ParseTheme(theme); ok {
		a.out.SetTheme(th)
	}
	return a, nil
}

// Run executes args as a single command, or starts the REPL when args is
// empty. Local storage is closed on return.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.Close()

	if len(args) > 0 {
		err := a.Execute(ctx, args)
		if err == nil || isExit(err) {
			return nil
		}
		a.report(err)
		return err
	}

	a.Root(ctx)
	return nil
}

func (a *App) Close() error {
	return a.repos.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
