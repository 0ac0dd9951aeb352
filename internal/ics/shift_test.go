package ics

import (
	"strings"
	"testing"
	"time"
)

const sampleICS = `BEGIN:VCALENDAR
BEGIN:VEVENT
DTSTART:20250113T090000
DTEND:20250113T100000
SUMMARY:Lecture A
END:VEVENT
BEGIN:VEVENT
DTSTART:20250115T140000
DTEND:20250115T153000
SUMMARY:Lab B
END:VEVENT
END:VCALENDAR
`

// TestShift_RebasesEarliestEvent verifies the earliest timestamp lands on
// the target date with its original time of day, all other stamps move by
// the same delta, and the reported delta matches the rebase.
func TestShift_RebasesEarliestEvent(t *testing.T) {
	target := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	out, delta, err := Shift([]byte(sampleICS), target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 56 * 24 * time.Hour; delta != want {
		t.Errorf("delta = %v, want %v", delta, want)
	}
	got := string(out)
	if !strings.Contains(got, "DTSTART:20250310T090000") {
		t.Errorf("earliest event not rebased to target date:\n%s", got)
	}
	if !strings.Contains(got, "DTSTART:20250312T140000") {
		t.Errorf("later event not shifted by same delta:\n%s", got)
	}
	if !strings.Contains(got, "DTEND:20250312T153000") {
		t.Errorf("event end not shifted:\n%s", got)
	}
}

// TestShift_PreservesNonTimestampContent verifies summaries and structure
// survive untouched.
func TestShift_PreservesNonTimestampContent(t *testing.T) {
	target := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	out, _, err := Shift([]byte(sampleICS), target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"SUMMARY:Lecture A", "SUMMARY:Lab B", "BEGIN:VCALENDAR", "END:VCALENDAR"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("missing %q in shifted output", want)
		}
	}
}

// TestShift_NoTimestamps verifies a clear error for content with nothing to
// shift.
func TestShift_NoTimestamps(t *testing.T) {
	_, _, err := Shift([]byte("BEGIN:VCALENDAR\nEND:VCALENDAR\n"), time.Now())
	if err != ErrNoTimestamps {
		t.Errorf("expected ErrNoTimestamps, got %v", err)
	}
}

// TestDelta verifies the computed shift between the earliest stamp and the
// target date.
func TestDelta(t *testing.T) {
	target := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	delta, err := Delta([]byte(sampleICS), target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 7 * 24 * time.Hour; delta != want {
		t.Errorf("delta = %v, want %v", delta, want)
	}
}
