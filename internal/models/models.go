package models

import (
	"time"

	"github.com/claude/daymark/internal/fatigue"
	"github.com/google/uuid"
)

// WorkoutTemplateRow is a workout_templates row. Exercises are stored as a
// JSONB payload in the engine's own shape so the two never drift.
type WorkoutTemplateRow struct {
	ID        uuid.UUID          `json:"id"`
	UserID    int                `json:"user_id"`
	Name      string             `json:"name"`
	Exercises []fatigue.Exercise `json:"exercises"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Template converts the row into the engine's input type.
func (w WorkoutTemplateRow) Template() fatigue.Template {
	return fatigue.Template{ID: w.ID, Name: w.Name, Exercises: w.Exercises}
}

// WorkoutLogRow is a workout_logs row: one performance of a template on a
// date. Logs survive template deletion; the engine treats them as inert.
type WorkoutLogRow struct {
	ID          uuid.UUID `json:"id"`
	UserID      int       `json:"user_id"`
	TemplateID  uuid.UUID `json:"template_id"`
	PerformedOn time.Time `json:"performed_on"`
	CreatedAt   time.Time `json:"created_at"`
}

// LogEntry converts the row into the engine's input type.
func (w WorkoutLogRow) LogEntry() fatigue.LogEntry {
	return fatigue.LogEntry{TemplateID: w.TemplateID, PerformedOn: w.PerformedOn}
}

// HabitRow is a habits row. Frequency is unit+count, e.g. daily/1.
type HabitRow struct {
	ID             int64     `json:"id"`
	UserID         int       `json:"user_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	FrequencyUnit  string    `json:"frequency_unit"`
	FrequencyCount int       `json:"frequency_count"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// HabitCheckinRow is a habit_checkins row. habit_id+log_date is unique so
// re-submitting a check-in is idempotent.
type HabitCheckinRow struct {
	HabitID   int64     `json:"habit_id"`
	UserID    int       `json:"user_id"`
	LogDate   time.Time `json:"log_date"`
	Source    string    `json:"source,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StudySessionRow is a study_sessions row mirroring one calendar event, kept
// locally so the dashboard works when the calendar provider is unreachable.
type StudySessionRow struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	EventID   string    `json:"event_id"`
	Summary   string    `json:"summary"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Hours     float64   `json:"hours"`
}

// SyncEntryRow is a sync_entries row: one namespaced key-value document in
// the lightweight sync store. Last write wins.
type SyncEntryRow struct {
	UserID    int       `json:"user_id"`
	Key       string    `json:"key"`
	Value     []byte    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
