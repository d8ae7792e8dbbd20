// Package session manages the client-held session: an opaque bearer token
// plus the cached user profile, persisted under the "token" and "user" keys
// of the local store. The two keys are always written and removed together.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tourmate-app/tourmate-cli/internal/dbx"
	"github.com/tourmate-app/tourmate-cli/internal/models"
	"github.com/tourmate-app/tourmate-cli/internal/store"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Store is the injected session abstraction. Components receive it instead
// of reading persistent state ad hoc, so it can be faked in tests.
type Store interface {
	// Current returns the persisted session, or nil if nobody is logged in.
	Current(ctx context.Context) (*models.Session, error)

	// Save persists the session. Token and user are written atomically.
	Save(ctx context.Context, s models.Session) error

	// Clear removes the session. Token and user are removed atomically.
	Clear(ctx context.Context) error
}

// SQLStore persists the session in the local sqlite store.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Current(ctx context.Context) (*models.Session, error) {
	kv := store.NewKeyVal(s.db)

	token, err := kv.Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	rawUser, err := kv.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	// A half-written session is treated as no session at all.
	if token == nil || rawUser == nil {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(rawUser, &u); err != nil {
		return nil, fmt.Errorf("corrupt stored user profile: %w", err)
	}
	return &models.Session{Token: string(token), User: u}, nil
}

func (s *SQLStore) Save(ctx context.Context, sess models.Session) error {
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := store.NewKeyVal(tx)
		if err := kv.Set(ctx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return kv.Set(ctx, keyUser, rawUser)
	})
}

func (s *SQLStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := store.NewKeyVal(tx)
		if err := kv.Delete(ctx, keyToken); err != nil {
			return err
		}
		return kv.Delete(ctx, keyUser)
	})
}
