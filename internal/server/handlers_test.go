package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestCreateTemplateInvalidJSON verifies malformed bodies are rejected with
// 400 before any storage access.
func TestCreateTemplateInvalidJSON(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/templates", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	s.handleCreateTemplate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestCreateTemplateMissingName verifies a template without a name is rejected.
func TestCreateTemplateMissingName(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/templates", strings.NewReader(`{"exercises":[]}`))
	rec := httptest.NewRecorder()

	s.handleCreateTemplate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] != "name is required" {
		t.Errorf("error = %q, want %q", body["error"], "name is required")
	}
}

// TestCreateLogBadDate verifies performed_on must be a plain date.
func TestCreateLogBadDate(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/logs",
		strings.NewReader(`{"template_id":"6a0f8e0e-35a1-4f0b-9f3c-0d6f4a0f8e0e","performed_on":"yesterday"}`))
	rec := httptest.NewRecorder()

	s.handleCreateLog(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestFatigueBadInstant verifies the "at" query param must be RFC 3339.
func TestFatigueBadInstant(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fatigue?at=last-tuesday", nil)
	rec := httptest.NewRecorder()

	s.handleFatigue(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestHabitCheckinBadID verifies a non-numeric habit id is rejected.
func TestHabitCheckinBadID(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/habits/abc/checkin", nil)
	rec := httptest.NewRecorder()

	s.handleHabitCheckin(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestPutSyncEntryInvalidJSON verifies sync documents must be valid JSON.
func TestPutSyncEntryInvalidJSON(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sync/settings", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	s.handlePutSyncEntry(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestPutSyncEntryTooLarge verifies oversized documents are rejected with 413.
func TestPutSyncEntryTooLarge(t *testing.T) {
	s := &Server{}
	big := `{"v":"` + strings.Repeat("x", maxSyncValueBytes) + `"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sync/settings", strings.NewReader(big))
	rec := httptest.NewRecorder()

	s.handlePutSyncEntry(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
}

// TestDeleteStudyPlanWithoutCalendar verifies the endpoint reports 503 when
// no calendar client is configured.
func TestDeleteStudyPlanWithoutCalendar(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/study/today/plan", nil)
	rec := httptest.NewRecorder()

	s.handleDeleteStudyPlan(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

// TestParseTimeRangeDefaults verifies the 7-day default window.
func TestParseTimeRangeDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil)
	start, end, err := parseTimeRange(req)
	if err != nil {
		t.Fatalf("parseTimeRange: %v", err)
	}
	if got := end.Sub(start); got != 7*24*time.Hour {
		t.Errorf("window = %v, want %v", got, 7*24*time.Hour)
	}
}

// TestParseTimeRangeDates verifies plain YYYY-MM-DD bounds are accepted.
func TestParseTimeRangeDates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs?start=2026-08-01&end=2026-08-15", nil)
	start, end, err := parseTimeRange(req)
	if err != nil {
		t.Fatalf("parseTimeRange: %v", err)
	}
	if start.Format("2006-01-02") != "2026-08-01" {
		t.Errorf("start = %v", start)
	}
	if end.Format("2006-01-02") != "2026-08-15" {
		t.Errorf("end = %v", end)
	}
}

// TestParseTimeRangeRejectsGarbage verifies unparseable bounds error out.
func TestParseTimeRangeRejectsGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs?start=whenever", nil)
	if _, _, err := parseTimeRange(req); err == nil {
		t.Fatal("expected an error for a garbage start bound")
	}
}

// TestWriteJSONContentType verifies the helper sets header and status.
func TestWriteJSONContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusTeapot, map[string]string{"k": "v"})

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %q", ct)
	}
}
