package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/logdash/internal/client/migrations"
	"github.com/dmitrijs2005/logdash/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const memoryDSN = ":memory:"

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the local SQLite database at path
// and brings its schema up to date. Pass ":memory:" for a throwaway store.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if path != memoryDSN {
		abs, err := filex.EnsureDirFor(path)
		if err != nil {
			return nil, err
		}
		dsn = abs
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// The REPL and the session watcher share this handle; a single
	// connection serializes them and keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
