// Package store provides the client-local sqlite persistence used for the
// session. It is the only durable state the client keeps; everything else
// lives in memory for the lifetime of a view.
package store

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/tourmate-app/tourmate-cli/internal/store/migrations"

	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the local sqlite database at dsn and
// applies pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
