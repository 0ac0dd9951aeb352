package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/daymark/internal/models"
	"github.com/jackc/pgx/v5"
)

// InsertHabit creates a habit and returns its row.
func (db *DB) InsertHabit(ctx context.Context, userID int, name, description, freqUnit string, freqCount int) (*models.HabitRow, error) {
	row := &models.HabitRow{
		UserID:         userID,
		Name:           name,
		Description:    description,
		FrequencyUnit:  freqUnit,
		FrequencyCount: freqCount,
		Active:         true,
	}
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO habits (user_id, name, description, frequency_unit, frequency_count, active)
		 VALUES ($1, $2, $3, $4, $5, true)
		 RETURNING id, created_at`,
		userID, name, description, freqUnit, freqCount).Scan(&row.ID, &row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting habit: %w", err)
	}
	return row, nil
}

// QueryHabits returns a user's habits, active first then by name.
func (db *DB) QueryHabits(ctx context.Context, userID int) ([]models.HabitRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, description, frequency_unit, frequency_count, active, created_at
		 FROM habits WHERE user_id = $1
		 ORDER BY active DESC, name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying habits: %w", err)
	}
	defer rows.Close()

	var result []models.HabitRow
	for rows.Next() {
		var h models.HabitRow
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Description,
			&h.FrequencyUnit, &h.FrequencyCount, &h.Active, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning habit: %w", err)
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

// GetHabit retrieves a single habit.
func (db *DB) GetHabit(ctx context.Context, id int64, userID int) (*models.HabitRow, error) {
	var h models.HabitRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, description, frequency_unit, frequency_count, active, created_at
		 FROM habits WHERE id = $1 AND user_id = $2`, id, userID).
		Scan(&h.ID, &h.UserID, &h.Name, &h.Description,
			&h.FrequencyUnit, &h.FrequencyCount, &h.Active, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying habit: %w", err)
	}
	return &h, nil
}

// SetHabitActive archives or reactivates a habit.
func (db *DB) SetHabitActive(ctx context.Context, id int64, userID int, active bool) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE habits SET active = $1 WHERE id = $2 AND user_id = $3`, active, id, userID)
	if err != nil {
		return fmt.Errorf("updating habit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertHabitCheckin records a check-in for a calendar day. The habit_id +
// log_date unique index makes re-submission idempotent; returns true when a
// new row was written.
func (db *DB) InsertHabitCheckin(ctx context.Context, habitID int64, userID int, logDate time.Time, source, note string) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO habit_checkins (habit_id, user_id, log_date, source, note)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (habit_id, log_date) DO NOTHING`,
		habitID, userID, logDate, source, note)
	if err != nil {
		return false, fmt.Errorf("inserting habit checkin: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// QueryHabitCheckinDates returns the distinct check-in dates for a habit
// since the given cutoff, oldest first.
func (db *DB) QueryHabitCheckinDates(ctx context.Context, habitID int64, userID int, since time.Time) ([]time.Time, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT log_date FROM habit_checkins
		 WHERE habit_id = $1 AND user_id = $2 AND log_date >= $3
		 ORDER BY log_date ASC`,
		habitID, userID, since)
	if err != nil {
		return nil, fmt.Errorf("querying habit checkins: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning checkin date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
