package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/daymark/internal/models"
	"github.com/jackc/pgx/v5"
)

// GetSyncEntry retrieves one document from the sync store.
func (db *DB) GetSyncEntry(ctx context.Context, userID int, key string) (*models.SyncEntryRow, error) {
	var row models.SyncEntryRow
	err := db.Pool.QueryRow(ctx,
		`SELECT user_id, key, value, updated_at FROM sync_entries
		 WHERE user_id = $1 AND key = $2`,
		userID, key).Scan(&row.UserID, &row.Key, &row.Value, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying sync entry: %w", err)
	}
	return &row, nil
}

// PutSyncEntry writes a document, last write wins.
func (db *DB) PutSyncEntry(ctx context.Context, userID int, key string, value []byte) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO sync_entries (user_id, key, value, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id, key) DO UPDATE
		 SET value = EXCLUDED.value, updated_at = now()`,
		userID, key, value)
	if err != nil {
		return fmt.Errorf("writing sync entry: %w", err)
	}
	return nil
}

// DeleteSyncEntry removes a document.
func (db *DB) DeleteSyncEntry(ctx context.Context, userID int, key string) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM sync_entries WHERE user_id = $1 AND key = $2`, userID, key)
	if err != nil {
		return fmt.Errorf("deleting sync entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSyncKeys returns all keys for a user, for client reconciliation.
func (db *DB) ListSyncKeys(ctx context.Context, userID int) ([]string, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT key FROM sync_entries WHERE user_id = $1 ORDER BY key ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sync keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning sync key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
