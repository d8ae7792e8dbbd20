package dbx

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var errBoom = errors.New("boom")

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "dbx_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE entries (k TEXT PRIMARY KEY, v TEXT)`)
	require.NoError(t, err)
	return db
}

func insertEntry(ctx context.Context, tx DBTX, k string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO entries(k, v) VALUES (?, 'x')`, k)
	return err
}

func entryCount(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n))
	return n
}

func TestWithTxCommitsAllWrites(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
		if err := insertEntry(ctx, tx, "a"); err != nil {
			return err
		}
		return insertEntry(ctx, tx, "b")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, entryCount(t, db))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insertEntry(ctx, tx, "a"))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, entryCount(t, db), "writes before the error must not survive")
}

func TestWithTxRollsBackAndRethrowsPanic(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	defer func() {
		p := recover()
		require.Equal(t, "tx broke", p, "panic value must be preserved")
		assert.Equal(t, 0, entryCount(t, db))
	}()

	_ = WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insertEntry(ctx, tx, "a"))
		panic("tx broke")
	})
}

func TestWithTxBeginFailure(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called, "fn must not run when the transaction cannot start")
}
