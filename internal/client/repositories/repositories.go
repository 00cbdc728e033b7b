// Package repositories opens the local SQLite database, applies the embedded
// goose migrations and hands out the repositories built on it.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acmchapter/chapterdesk/internal/client/migrations"
	"github.com/acmchapter/chapterdesk/internal/client/repositories/localstorage"
	"github.com/acmchapter/chapterdesk/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories bundles the repositories sharing one database handle.
type Repositories struct {
	DB           *sql.DB
	LocalStorage localstorage.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations. Running it twice is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// One writer keeps SQLite from reporting SQLITE_BUSY inside transactions.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		DB:           db,
		LocalStorage: localstorage.NewSQLiteRepository(db),
	}, nil
}

// WithTx runs fn against repositories bound to a single transaction.
func (r *Repositories) WithTx(ctx context.Context, fn func(ctx context.Context, ls localstorage.Repository) error) error {
	return dbx.WithTx(ctx, r.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, localstorage.NewSQLiteRepository(tx))
	})
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
