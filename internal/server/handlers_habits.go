package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/daymark/internal/models"
	"github.com/claude/daymark/internal/storage"
	"github.com/go-chi/chi/v5"
)

type habitRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	FrequencyUnit  string `json:"frequency_unit"`
	FrequencyCount int    `json:"frequency_count"`
}

func (s *Server) handleCreateHabit(w http.ResponseWriter, r *http.Request) {
	var req habitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if req.FrequencyUnit == "" {
		req.FrequencyUnit = "daily"
	}
	if req.FrequencyCount <= 0 {
		req.FrequencyCount = 1
	}

	row, err := s.db.InsertHabit(r.Context(), defaultUserID, req.Name, req.Description, req.FrequencyUnit, req.FrequencyCount)
	if err != nil {
		s.log.Error("create habit failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleListHabits(w http.ResponseWriter, r *http.Request) {
	rows, err := s.db.QueryHabits(r.Context(), defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type checkinRequest struct {
	Date string `json:"date,omitempty"` // YYYY-MM-DD, default today
	Note string `json:"note,omitempty"`
}

func (s *Server) handleHabitCheckin(w http.ResponseWriter, r *http.Request) {
	habitID, ok := parseHabitID(w, r)
	if !ok {
		return
	}

	var req checkinRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
			return
		}
	}

	logDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
			return
		}
		logDate = parsed
	}

	if _, err := s.db.GetHabit(r.Context(), habitID, defaultUserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "habit not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	inserted, err := s.db.InsertHabitCheckin(r.Context(), habitID, defaultUserID, logDate, "manual", req.Note)
	if err != nil {
		s.log.Error("habit checkin failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":     logDate.Format("2006-01-02"),
		"inserted": inserted, // false means this day was already checked in
	})
}

func (s *Server) handleHabitArchive(w http.ResponseWriter, r *http.Request) {
	habitID, ok := parseHabitID(w, r)
	if !ok {
		return
	}
	err := s.db.SetHabitActive(r.Context(), habitID, defaultUserID, false)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "habit not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "archived"})
}

// handleHabitStreaks reports streak state for every active habit. Check-ins
// further back than a year no longer affect the numbers shown.
func (s *Server) handleHabitStreaks(w http.ResponseWriter, r *http.Request) {
	habits, err := s.db.QueryHabits(r.Context(), defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	since := now.AddDate(-1, 0, 0)

	type habitStreaks struct {
		models.HabitRow
		Streaks models.Streaks `json:"streaks"`
	}

	result := make([]habitStreaks, 0, len(habits))
	for _, h := range habits {
		if !h.Active {
			continue
		}
		dates, err := s.db.QueryHabitCheckinDates(r.Context(), h.ID, defaultUserID, since)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		result = append(result, habitStreaks{HabitRow: h, Streaks: models.ComputeStreaks(dates, now)})
	}
	writeJSON(w, http.StatusOK, result)
}

// handleHabitCheckins returns a habit's raw check-in dates, oldest first.
// Clients that want streaks computed for them use /habits/streaks instead.
func (s *Server) handleHabitCheckins(w http.ResponseWriter, r *http.Request) {
	habitID, ok := parseHabitID(w, r)
	if !ok {
		return
	}
	since := time.Now().UTC().AddDate(-1, 0, 0)
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		parsed, err := time.Parse("2006-01-02", sinceStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "since must be YYYY-MM-DD"})
			return
		}
		since = parsed
	}

	dates, err := s.db.QueryHabitCheckinDates(r.Context(), habitID, defaultUserID, since)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	writeJSON(w, http.StatusOK, map[string]any{"habit_id": habitID, "dates": out})
}

func parseHabitID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid habit id"})
		return 0, false
	}
	return id, true
}
