package calendar

import (
	"math"
	"testing"
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

func timed(start, end time.Time) *gcal.Event {
	return &gcal.Event{
		Start: &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:   &gcal.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}
}

// TestTallyHours_Scheduled verifies full-event summing regardless of now.
func TestTallyHours_Scheduled(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	events := []*gcal.Event{
		timed(base, base.Add(2*time.Hour)),
		timed(base.Add(4*time.Hour), base.Add(5*time.Hour+30*time.Minute)),
	}
	scheduled, _ := TallyHours(events, base)
	if math.Abs(scheduled-3.5) > 1e-9 {
		t.Errorf("scheduled = %v, want 3.5", scheduled)
	}
}

// TestTallyHours_CompletedClampsToNow verifies an in-progress event counts
// only its elapsed portion and future events count nothing.
func TestTallyHours_CompletedClampsToNow(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	events := []*gcal.Event{
		timed(base, base.Add(1*time.Hour)),                    // fully past
		timed(base.Add(2*time.Hour), base.Add(4*time.Hour)),   // in progress
		timed(base.Add(6*time.Hour), base.Add(7*time.Hour)),   // future
	}
	now := base.Add(3 * time.Hour)
	_, completed := TallyHours(events, now)
	if math.Abs(completed-2.0) > 1e-9 {
		t.Errorf("completed = %v, want 2.0 (1h past + 1h of in-progress)", completed)
	}
}

// TestTallyHours_SkipsAllDayAndMalformed verifies all-day events and events
// with unparseable or inverted times contribute nothing.
func TestTallyHours_SkipsAllDayAndMalformed(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	events := []*gcal.Event{
		{Start: &gcal.EventDateTime{Date: "2026-03-10"}, End: &gcal.EventDateTime{Date: "2026-03-11"}},
		{Start: &gcal.EventDateTime{DateTime: "not-a-time"}, End: &gcal.EventDateTime{DateTime: "also-not"}},
		timed(base.Add(2*time.Hour), base), // end before start
		nil2(),
	}
	scheduled, completed := TallyHours(events, base.Add(24*time.Hour))
	if scheduled != 0 || completed != 0 {
		t.Errorf("expected zero hours, got scheduled=%v completed=%v", scheduled, completed)
	}
}

func nil2() *gcal.Event { return &gcal.Event{} }

// TestDayBounds verifies midnight-to-midnight bounds in the input location.
func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2026, time.March, 10, 17, 45, 0, 0, loc)
	start, end := DayBounds(in)
	if start.Hour() != 0 || start.Day() != 10 {
		t.Errorf("start = %v, want midnight March 10", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("day length = %v, want 24h", end.Sub(start))
	}
}
