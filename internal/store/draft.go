package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// The two logical keys the surrounding application uses.
const (
	KeyDraftText   = "draft.text"   // current edited text blob
	KeyDraftFormat = "draft.format" // current format flag: "tabular" or "json"
)

// DraftStore is a string key/value store backed by SQLite.
type DraftStore struct {
	db *sql.DB
}

// NewDraftStore creates a DraftStore on the given database.
func NewDraftStore(db *sql.DB) *DraftStore {
	return &DraftStore{db: db}
}

// Get returns the value for key, or "" if the key has never been set.
func (s *DraftStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM drafts WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading draft key %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *DraftStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drafts (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing draft key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *DraftStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting draft key %q: %w", key, err)
	}
	return nil
}
