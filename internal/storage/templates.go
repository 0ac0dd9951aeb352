package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/daymark/internal/fatigue"
	"github.com/claude/daymark/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// InsertWorkoutTemplate stores a new template and returns its row.
func (db *DB) InsertWorkoutTemplate(ctx context.Context, userID int, name string, exercises []fatigue.Exercise) (*models.WorkoutTemplateRow, error) {
	payload, err := json.Marshal(exercises)
	if err != nil {
		return nil, fmt.Errorf("encoding exercises: %w", err)
	}

	row := &models.WorkoutTemplateRow{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Exercises: exercises,
	}
	err = db.Pool.QueryRow(ctx,
		`INSERT INTO workout_templates (id, user_id, name, exercises)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		row.ID, userID, name, payload).Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting template: %w", err)
	}
	return row, nil
}

// UpdateWorkoutTemplate replaces a template's name and exercise list.
func (db *DB) UpdateWorkoutTemplate(ctx context.Context, id uuid.UUID, userID int, name string, exercises []fatigue.Exercise) error {
	payload, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("encoding exercises: %w", err)
	}
	tag, err := db.Pool.Exec(ctx,
		`UPDATE workout_templates SET name = $1, exercises = $2, updated_at = now()
		 WHERE id = $3 AND user_id = $4`,
		name, payload, id, userID)
	if err != nil {
		return fmt.Errorf("updating template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWorkoutTemplate removes a template. Logs referencing it are kept;
// the fatigue engine skips them as dangling references.
func (db *DB) DeleteWorkoutTemplate(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM workout_templates WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetWorkoutTemplate retrieves a single template by ID.
func (db *DB) GetWorkoutTemplate(ctx context.Context, id uuid.UUID, userID int) (*models.WorkoutTemplateRow, error) {
	var (
		row     models.WorkoutTemplateRow
		payload []byte
	)
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, exercises, created_at, updated_at
		 FROM workout_templates WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&row.ID, &row.UserID, &row.Name, &payload, &row.CreatedAt, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying template: %w", err)
	}
	if err := json.Unmarshal(payload, &row.Exercises); err != nil {
		return nil, fmt.Errorf("decoding exercises: %w", err)
	}
	return &row, nil
}

// QueryWorkoutTemplates retrieves all templates for a user, newest first.
func (db *DB) QueryWorkoutTemplates(ctx context.Context, userID int) ([]models.WorkoutTemplateRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, exercises, created_at, updated_at
		 FROM workout_templates WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutTemplateRow
	for rows.Next() {
		var (
			row     models.WorkoutTemplateRow
			payload []byte
		)
		if err := rows.Scan(&row.ID, &row.UserID, &row.Name, &payload, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		if err := json.Unmarshal(payload, &row.Exercises); err != nil {
			return nil, fmt.Errorf("decoding exercises: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
