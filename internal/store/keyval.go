package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tourmate-app/tourmate-cli/internal/dbx"
)

// KeyVal is a small key/value repository over the keyval table. It is the
// sqlite stand-in for the browser's local storage: opaque values under
// string keys, last writer wins.
type KeyVal struct {
	db dbx.DBTX
}

// NewKeyVal returns a repository bound to db, which may be a *sql.DB or a
// transaction handle so multiple writes can share one transaction.
func NewKeyVal(db dbx.DBTX) *KeyVal {
	return &KeyVal{db: db}
}

// Get returns the value stored under key, or nil if the key is absent.
func (r *KeyVal) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM keyval WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get keyval[%s]: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (r *KeyVal) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO keyval (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set keyval[%s]: %w", key, err)
	}
	return nil
}

// Delete removes key if present.
func (r *KeyVal) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM keyval WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete keyval[%s]: %w", key, err)
	}
	return nil
}
