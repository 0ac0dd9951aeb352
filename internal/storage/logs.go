package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/daymark/internal/models"
	"github.com/google/uuid"
)

// ErrTemplateGone reports a log insert against a template that was deleted
// between the client reading it and submitting the log.
var ErrTemplateGone = errors.New("template no longer exists")

// InsertWorkoutLog records that a template was performed on a date. There is
// deliberately no foreign key on template_id: logs outlive template deletion
// and the fatigue engine treats dangling references as inert. New logs are
// still checked against a live template so typos surface at entry time.
func (db *DB) InsertWorkoutLog(ctx context.Context, userID int, templateID uuid.UUID, performedOn time.Time) (*models.WorkoutLogRow, error) {
	var exists bool
	err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM workout_templates WHERE id = $1 AND user_id = $2)`,
		templateID, userID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking template: %w", err)
	}
	if !exists {
		return nil, ErrTemplateGone
	}

	row := &models.WorkoutLogRow{
		ID:          uuid.New(),
		UserID:      userID,
		TemplateID:  templateID,
		PerformedOn: performedOn,
	}
	err = db.Pool.QueryRow(ctx,
		`INSERT INTO workout_logs (id, user_id, template_id, performed_on)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		row.ID, userID, templateID, performedOn).Scan(&row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting workout log: %w", err)
	}
	return row, nil
}

// DeleteWorkoutLog removes a single log entry.
func (db *DB) DeleteWorkoutLog(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM workout_logs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting workout log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// QueryWorkoutLogs retrieves logs performed in [start, end), newest first.
func (db *DB) QueryWorkoutLogs(ctx context.Context, start, end time.Time, userID int) ([]models.WorkoutLogRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, template_id, performed_on, created_at
		 FROM workout_logs
		 WHERE performed_on >= $1 AND performed_on < $2 AND user_id = $3
		 ORDER BY performed_on DESC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying workout logs: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutLogRow
	for rows.Next() {
		var row models.WorkoutLogRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.TemplateID, &row.PerformedOn, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning workout log: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// QueryRecentWorkoutLogs retrieves the logs that can still influence fatigue
// at evaluation instant at: everything performed within the engine's 14-day
// window, padded by a day to cover the noon-UTC anchoring.
func (db *DB) QueryRecentWorkoutLogs(ctx context.Context, at time.Time, userID int) ([]models.WorkoutLogRow, error) {
	cutoff := at.AddDate(0, 0, -15)
	logs, err := db.QueryWorkoutLogs(ctx, cutoff, at.AddDate(0, 0, 1), userID)
	if err != nil {
		return nil, err
	}
	return logs, nil
}
