package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/daymark/internal/models"
)

// UpsertStudySessions mirrors calendar events into study_sessions. Events
// are keyed by their provider event id so re-sync is idempotent; returns the
// number of rows written or refreshed.
func (db *DB) UpsertStudySessions(ctx context.Context, userID int, sessions []models.StudySessionRow) (int64, error) {
	var written int64
	for _, s := range sessions {
		tag, err := db.Pool.Exec(ctx,
			`INSERT INTO study_sessions (user_id, event_id, summary, start_time, end_time, hours)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (user_id, event_id) DO UPDATE
			 SET summary = EXCLUDED.summary,
			     start_time = EXCLUDED.start_time,
			     end_time = EXCLUDED.end_time,
			     hours = EXCLUDED.hours`,
			userID, s.EventID, s.Summary, s.StartTime, s.EndTime, s.Hours)
		if err != nil {
			return written, fmt.Errorf("upserting study session %s: %w", s.EventID, err)
		}
		written += tag.RowsAffected()
	}
	return written, nil
}

// QueryStudySessions retrieves sessions starting in [start, end).
func (db *DB) QueryStudySessions(ctx context.Context, start, end time.Time, userID int) ([]models.StudySessionRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, event_id, summary, start_time, end_time, hours
		 FROM study_sessions
		 WHERE start_time >= $1 AND start_time < $2 AND user_id = $3
		 ORDER BY start_time ASC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying study sessions: %w", err)
	}
	defer rows.Close()

	var result []models.StudySessionRow
	for rows.Next() {
		var s models.StudySessionRow
		if err := rows.Scan(&s.ID, &s.UserID, &s.EventID, &s.Summary, &s.StartTime, &s.EndTime, &s.Hours); err != nil {
			return nil, fmt.Errorf("scanning study session: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// StudyDayTotal is one day's studied hours.
type StudyDayTotal struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// GetStudyDailyTotals returns per-day studied hours over [start, end).
func (db *DB) GetStudyDailyTotals(ctx context.Context, start, end time.Time, userID int) ([]StudyDayTotal, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT start_time::date AS day, COALESCE(SUM(hours), 0)
		 FROM study_sessions
		 WHERE start_time >= $1 AND start_time < $2 AND user_id = $3
		 GROUP BY day
		 ORDER BY day ASC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying study totals: %w", err)
	}
	defer rows.Close()

	var result []StudyDayTotal
	for rows.Next() {
		var (
			day   time.Time
			total StudyDayTotal
		)
		if err := rows.Scan(&day, &total.Hours); err != nil {
			return nil, fmt.Errorf("scanning study total: %w", err)
		}
		total.Date = day.Format("2006-01-02")
		result = append(result, total)
	}
	return result, rows.Err()
}
