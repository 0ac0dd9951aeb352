package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/claude/daymark/internal/fatigue"
	"github.com/claude/daymark/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// defaultUserID scopes all rows until multi-user auth exists. The schema
// already carries user_id so adding it later is a handler change only.
const defaultUserID = 1

type templateRequest struct {
	Name      string             `json:"name"`
	Exercises []fatigue.Exercise `json:"exercises"`
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	row, err := s.db.InsertWorkoutTemplate(r.Context(), defaultUserID, req.Name, req.Exercises)
	if err != nil {
		s.log.Error("create template failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	rows, err := s.db.QueryWorkoutTemplates(r.Context(), defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}
	row, err := s.db.GetWorkoutTemplate(r.Context(), id, defaultUserID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	err := s.db.UpdateWorkoutTemplate(r.Context(), id, defaultUserID, req.Name, req.Exercises)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}
	err := s.db.DeleteWorkoutTemplate(r.Context(), id, defaultUserID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type logRequest struct {
	TemplateID  uuid.UUID `json:"template_id"`
	PerformedOn string    `json:"performed_on"` // YYYY-MM-DD
}

func (s *Server) handleCreateLog(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	performedOn, err := time.Parse("2006-01-02", req.PerformedOn)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "performed_on must be YYYY-MM-DD"})
		return
	}

	row, err := s.db.InsertWorkoutLog(r.Context(), defaultUserID, req.TemplateID, performedOn)
	if errors.Is(err, storage.ErrTemplateGone) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "template no longer exists"})
		return
	}
	if err != nil {
		s.log.Error("create log failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rows, err := s.db.QueryWorkoutLogs(r.Context(), start, end, defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleDeleteLog(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}
	err := s.db.DeleteWorkoutLog(r.Context(), id, defaultUserID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "log not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleFatigue evaluates per-muscle fatigue at an instant (query param
// "at", RFC 3339, default now). Scores are recomputed every call; nothing
// is persisted.
func (s *Server) handleFatigue(w http.ResponseWriter, r *http.Request) {
	at := time.Now()
	if atStr := r.URL.Query().Get("at"); atStr != "" {
		parsed, err := time.Parse(time.RFC3339, atStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "at must be RFC 3339"})
			return
		}
		at = parsed
	}

	logRows, err := s.db.QueryRecentWorkoutLogs(r.Context(), at, defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	tplRows, err := s.db.QueryWorkoutTemplates(r.Context(), defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	logs := make([]fatigue.LogEntry, len(logRows))
	for i, row := range logRows {
		logs[i] = row.LogEntry()
	}
	templates := make([]fatigue.Template, len(tplRows))
	for i, row := range tplRows {
		templates[i] = row.Template()
	}

	scores := s.engine.ComputeMuscleFatigue(logs, templates, at)
	writeJSON(w, http.StatusOK, map[string]any{
		"at":     at.Format(time.RFC3339),
		"scores": scores,
	})
}

func parseUUIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 7 days
		end = time.Now()
		start = end.AddDate(0, 0, -7)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
		}
	}
	return start, end, nil
}
