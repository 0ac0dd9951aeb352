package calendar

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	gcal "google.golang.org/api/calendar/v3"
	_ "modernc.org/sqlite"
)

// Cache memoizes fetched calendar days in a local SQLite file so historical
// days (whose events no longer change) are never refetched.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (or creates) the SQLite event cache at dir/events.db.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "events.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening event cache: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS cached_days (
		calendar_id TEXT NOT NULL,
		day         TEXT NOT NULL,
		events      TEXT NOT NULL,
		fetched_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (calendar_id, day)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Load returns the cached events for a day, if present.
func (c *Cache) Load(calendarID, day string) ([]*gcal.Event, bool, error) {
	var payload string
	err := c.db.QueryRow(
		`SELECT events FROM cached_days WHERE calendar_id = ? AND day = ?`,
		calendarID, day,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var events []*gcal.Event
	if err := json.Unmarshal([]byte(payload), &events); err != nil {
		return nil, false, fmt.Errorf("decoding cached events: %w", err)
	}
	return events, true, nil
}

// Store writes a day's events, replacing any previous snapshot.
func (c *Cache) Store(calendarID, day string, events []*gcal.Event) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encoding events: %w", err)
	}
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO cached_days (calendar_id, day, events) VALUES (?, ?, ?)`,
		calendarID, day, string(payload),
	)
	return err
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}
