package mcp

import (
	"context"
	"time"

	"github.com/claude/daymark/internal/fatigue"
	"github.com/claude/daymark/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 7 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -7)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolGetMuscleFatigue = mcp.NewTool("get_muscle_fatigue",
	mcp.WithDescription("Estimate per-muscle fatigue scores (0-100) from logged workouts over the last two weeks. Higher means less recovered. Useful for deciding what to train next."),
	mcp.WithString("at", mcp.Description("Evaluation instant (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
)

var toolGetWorkoutTemplates = mcp.NewTool("get_workout_templates",
	mcp.WithDescription("List workout templates with their exercises, set/rep schemes, and target muscles."),
)

var toolGetWorkoutLogs = mcp.NewTool("get_workout_logs",
	mcp.WithDescription("Query logged workout sessions (template performed on a date)."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
)

var toolGetHabitStreaks = mcp.NewTool("get_habit_streaks",
	mcp.WithDescription("Current and longest streaks for every active habit, plus whether each is checked in today."),
)

var toolGetStudyHours = mcp.NewTool("get_study_hours",
	mcp.WithDescription("Per-day studied hours tallied from the study calendar mirror."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

// --- Tool handlers ---

// fatigueScores runs the engine against recent logs and templates at the
// given instant.
func (h *handlers) fatigueScores(ctx context.Context, at time.Time, uid int) (map[fatigue.MuscleGroup]int, error) {
	logRows, err := h.ds.QueryRecentWorkoutLogs(ctx, at, uid)
	if err != nil {
		return nil, err
	}
	tplRows, err := h.ds.QueryWorkoutTemplates(ctx, uid)
	if err != nil {
		return nil, err
	}

	logs := make([]fatigue.LogEntry, len(logRows))
	for i, row := range logRows {
		logs[i] = row.LogEntry()
	}
	templates := make([]fatigue.Template, len(tplRows))
	for i, row := range tplRows {
		templates[i] = row.Template()
	}
	return h.engine.ComputeMuscleFatigue(logs, templates, at), nil
}

func (h *handlers) getMuscleFatigue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	at := time.Now()
	if atStr := req.GetString("at", ""); atStr != "" {
		parsed, err := parseFlexTime(atStr)
		if err != nil {
			return mcp.NewToolResultError("invalid at: " + err.Error()), nil
		}
		at = parsed
	}

	uid := UserIDFromContext(ctx)
	scores, err := h.fatigueScores(ctx, at, uid)
	if err != nil {
		h.log.Error("mcp get_muscle_fatigue", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"at":     at.Format(time.RFC3339),
		"scores": scores,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutTemplates(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	templates, err := h.ds.QueryWorkoutTemplates(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_workout_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(templates)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutLogs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	logs, err := h.ds.QueryWorkoutLogs(ctx, start, end, uid)
	if err != nil {
		h.log.Error("mcp get_workout_logs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(logs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// habitStreaks pairs a habit with its computed streak state.
type habitStreaks struct {
	models.HabitRow
	Streaks models.Streaks `json:"streaks"`
}

func (h *handlers) activeHabitStreaks(ctx context.Context, now time.Time, uid int) ([]habitStreaks, error) {
	habits, err := h.ds.QueryHabits(ctx, uid)
	if err != nil {
		return nil, err
	}

	since := now.AddDate(-1, 0, 0)
	result := make([]habitStreaks, 0, len(habits))
	for _, habit := range habits {
		if !habit.Active {
			continue
		}
		dates, err := h.ds.QueryHabitCheckinDates(ctx, habit.ID, uid, since)
		if err != nil {
			return nil, err
		}
		result = append(result, habitStreaks{HabitRow: habit, Streaks: models.ComputeStreaks(dates, now)})
	}
	return result, nil
}

func (h *handlers) getHabitStreaks(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	streaks, err := h.activeHabitStreaks(ctx, time.Now().UTC(), uid)
	if err != nil {
		h.log.Error("mcp get_habit_streaks", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(streaks)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getStudyHours(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	totals, err := h.ds.GetStudyDailyTotals(ctx, start, end, uid)
	if err != nil {
		h.log.Error("mcp get_study_hours", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(totals)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
