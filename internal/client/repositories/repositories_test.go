package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/acmchapter/chapterdesk/internal/client/repositories/localstorage"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesTables(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "chapterdesk.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer repos.Close()

	assert.True(t, tableExists(t, repos.DB, "goose_db_version"))
	assert.True(t, tableExists(t, repos.DB, "local_storage"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "chapterdesk.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "local_storage"))
}

func TestRunMigrations_WrapsGooseError(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	boom := errors.New("boom")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	}

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrations(context.Background(), db)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "run migrations")
}

func TestWithTx_CommitsAndRollsBack(t *testing.T) {
	ctx := context.Background()
	repos, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	defer repos.Close()

	err = repos.WithTx(ctx, func(ctx context.Context, ls localstorage.Repository) error {
		if err := ls.SetItem(ctx, localstorage.KeyToken, "t1"); err != nil {
			return err
		}
		return ls.SetItem(ctx, localstorage.KeyRole, "ADMIN")
	})
	require.NoError(t, err)

	v, err := repos.LocalStorage.GetItem(ctx, localstorage.KeyRole)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", v)

	failed := errors.New("abort")
	err = repos.WithTx(ctx, func(ctx context.Context, ls localstorage.Repository) error {
		if err := ls.RemoveItem(ctx, localstorage.KeyToken); err != nil {
			return err
		}
		return failed
	})
	require.ErrorIs(t, err, failed)

	v, err = repos.LocalStorage.GetItem(ctx, localstorage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "t1", v, "rolled back removal must leave the token")
}
