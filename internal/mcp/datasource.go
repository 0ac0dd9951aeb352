package mcp

import (
	"context"
	"time"

	"github.com/claude/daymark/internal/models"
	"github.com/claude/daymark/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	QueryWorkoutTemplates(ctx context.Context, userID int) ([]models.WorkoutTemplateRow, error)
	QueryWorkoutLogs(ctx context.Context, start, end time.Time, userID int) ([]models.WorkoutLogRow, error)
	QueryRecentWorkoutLogs(ctx context.Context, at time.Time, userID int) ([]models.WorkoutLogRow, error)
	QueryHabits(ctx context.Context, userID int) ([]models.HabitRow, error)
	QueryHabitCheckinDates(ctx context.Context, habitID int64, userID int, since time.Time) ([]time.Time, error)
	QueryStudySessions(ctx context.Context, start, end time.Time, userID int) ([]models.StudySessionRow, error)
	GetStudyDailyTotals(ctx context.Context, start, end time.Time, userID int) ([]storage.StudyDayTotal, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
