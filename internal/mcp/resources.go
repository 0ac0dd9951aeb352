package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) fatigueSnapshot(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)
	now := time.Now()

	scores, err := h.fatigueScores(ctx, now, uid)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(map[string]any{
		"at":     now.Format(time.RFC3339),
		"scores": scores,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) today(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	sessions, err := h.ds.QueryStudySessions(ctx, today, tomorrow, uid)
	if err != nil {
		h.log.Warn("today: study query failed", "error", err)
	}
	var scheduled, completed float64
	for _, s := range sessions {
		scheduled += s.Hours
		if !s.EndTime.After(now) {
			completed += s.Hours
		} else if s.StartTime.Before(now) {
			completed += now.Sub(s.StartTime).Hours()
		}
	}

	streaks, err := h.activeHabitStreaks(ctx, now.UTC(), uid)
	if err != nil {
		h.log.Warn("today: habit query failed", "error", err)
	}

	workouts, err := h.ds.QueryWorkoutLogs(ctx, today, tomorrow, uid)
	if err != nil {
		h.log.Warn("today: workout query failed", "error", err)
	}

	summary := map[string]any{
		"date":                  today.Format("2006-01-02"),
		"study_scheduled_hours": scheduled,
		"study_completed_hours": completed,
		"habits":                streaks,
		"todays_workouts":       workouts,
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
