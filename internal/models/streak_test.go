package models

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestComputeStreaks_Basic verifies current and longest streaks over a
// history with one gap.
func TestComputeStreaks_Basic(t *testing.T) {
	today := day(2026, time.March, 10)
	dates := []time.Time{
		day(2026, time.March, 10),
		day(2026, time.March, 9),
		day(2026, time.March, 8),
		// gap on the 7th
		day(2026, time.March, 6),
		day(2026, time.March, 5),
		day(2026, time.March, 4),
		day(2026, time.March, 3),
	}
	s := ComputeStreaks(dates, today)
	if s.Current != 3 {
		t.Errorf("current = %d, want 3", s.Current)
	}
	if s.Longest != 4 {
		t.Errorf("longest = %d, want 4", s.Longest)
	}
	if !s.CheckedToday {
		t.Error("expected checked_today")
	}
	if s.TotalDays != 7 {
		t.Errorf("total_days = %d, want 7", s.TotalDays)
	}
}

// TestComputeStreaks_PendingToday verifies the current streak is preserved
// when today's check-in hasn't happened yet.
func TestComputeStreaks_PendingToday(t *testing.T) {
	today := day(2026, time.March, 10)
	dates := []time.Time{
		day(2026, time.March, 9),
		day(2026, time.March, 8),
	}
	s := ComputeStreaks(dates, today)
	if s.Current != 2 {
		t.Errorf("current = %d, want 2 (today pending, streak intact)", s.Current)
	}
	if s.CheckedToday {
		t.Error("expected checked_today=false")
	}
}

// TestComputeStreaks_Broken verifies a streak broken before yesterday resets
// the current count to zero.
func TestComputeStreaks_Broken(t *testing.T) {
	today := day(2026, time.March, 10)
	dates := []time.Time{
		day(2026, time.March, 6),
		day(2026, time.March, 5),
	}
	s := ComputeStreaks(dates, today)
	if s.Current != 0 {
		t.Errorf("current = %d, want 0", s.Current)
	}
	if s.Longest != 2 {
		t.Errorf("longest = %d, want 2", s.Longest)
	}
}

// TestComputeStreaks_DuplicatesAndTimes verifies duplicate check-ins and
// intraday timestamps collapse to calendar days.
func TestComputeStreaks_DuplicatesAndTimes(t *testing.T) {
	today := day(2026, time.March, 10)
	dates := []time.Time{
		time.Date(2026, time.March, 10, 7, 30, 0, 0, time.UTC),
		time.Date(2026, time.March, 10, 22, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC),
	}
	s := ComputeStreaks(dates, today)
	if s.TotalDays != 2 {
		t.Errorf("total_days = %d, want 2", s.TotalDays)
	}
	if s.Current != 2 {
		t.Errorf("current = %d, want 2", s.Current)
	}
}

// TestComputeStreaks_Empty verifies zero values for no history.
func TestComputeStreaks_Empty(t *testing.T) {
	s := ComputeStreaks(nil, day(2026, time.March, 10))
	if s.Current != 0 || s.Longest != 0 || s.TotalDays != 0 || s.LastCheckin != nil {
		t.Errorf("expected zero streaks, got %+v", s)
	}
}
