package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	kv := NewKeyVal(db)

	got, err := kv.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, got, "absent key must return nil, not an error")

	require.NoError(t, kv.Set(ctx, "token", []byte("abc")))
	require.NoError(t, kv.Set(ctx, "token", []byte("def")))

	got, err = kv.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("def"), got, "set must overwrite")

	require.NoError(t, kv.Delete(ctx, "token"))
	got, err = kv.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not fail on already-applied migrations.
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
