package server

import (
	"net/http"
	"time"

	"github.com/claude/daymark/internal/calendar"
)

// handleStudyToday reports today's scheduled and completed study hours.
// When a calendar client is configured the tally comes live from Google
// Calendar and the events are mirrored into study_sessions; otherwise it
// falls back to whatever sessions were last mirrored.
func (s *Server) handleStudyToday(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	if s.cal == nil {
		summary, err := s.localStudyDay(r, now)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, summary)
		return
	}

	events, err := s.cal.ListDayEvents(r.Context(), now)
	if err != nil {
		s.log.Error("listing study events failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	if _, err := s.db.UpsertStudySessions(r.Context(), defaultUserID, calendar.Sessions(events, defaultUserID)); err != nil {
		// The mirror is best-effort; the tally still stands.
		s.log.Warn("mirroring study sessions failed", "error", err)
	}

	scheduled, completed := calendar.TallyHours(events, now)
	writeJSON(w, http.StatusOK, calendar.DaySummary{
		Date:           now.Format("2006-01-02"),
		Events:         len(events),
		ScheduledHours: scheduled,
		CompletedHours: completed,
	})
}

// localStudyDay tallies today from mirrored sessions when no calendar
// client is available.
func (s *Server) localStudyDay(r *http.Request, now time.Time) (calendar.DaySummary, error) {
	start, end := calendar.DayBounds(now)
	sessions, err := s.db.QueryStudySessions(r.Context(), start, end, defaultUserID)
	if err != nil {
		return calendar.DaySummary{}, err
	}

	var scheduled, completed float64
	for _, sess := range sessions {
		scheduled += sess.Hours
		if !sess.EndTime.After(now) {
			completed += sess.Hours
		} else if sess.StartTime.Before(now) {
			completed += now.Sub(sess.StartTime).Hours()
		}
	}
	return calendar.DaySummary{
		Date:           now.Format("2006-01-02"),
		Events:         len(sessions),
		ScheduledHours: scheduled,
		CompletedHours: completed,
	}, nil
}

func (s *Server) handleStudyHistory(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	totals, err := s.db.GetStudyDailyTotals(r.Context(), start, end, defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

// handleStudySessions returns mirrored study sessions in a time range.
func (s *Server) handleStudySessions(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	sessions, err := s.db.QueryStudySessions(r.Context(), start, end, defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// handleDeleteStudyPlan wipes today's remaining study events from the
// calendar, typically before regenerating the day's plan.
func (s *Server) handleDeleteStudyPlan(w http.ResponseWriter, r *http.Request) {
	if s.cal == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "calendar integration is not configured"})
		return
	}
	deleted, err := s.cal.DeleteDayPlan(r.Context(), time.Now())
	if err != nil {
		s.log.Error("deleting study plan failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
