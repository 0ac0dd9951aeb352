package models

import "time"

// Streaks summarizes a habit's check-in history.
type Streaks struct {
	Current      int        `json:"current"`
	Longest      int        `json:"longest"`
	TotalDays    int        `json:"total_days"`
	LastCheckin  *time.Time `json:"last_checkin,omitempty"`
	CheckedToday bool       `json:"checked_today"`
}

// ComputeStreaks derives streak counts from check-in dates for a daily
// habit. Dates are compared by calendar day in UTC; duplicates are ignored.
// The current streak survives a missing check-in today (it only breaks once
// yesterday has also been missed).
func ComputeStreaks(dates []time.Time, today time.Time) Streaks {
	if len(dates) == 0 {
		return Streaks{}
	}

	days := make(map[time.Time]bool, len(dates))
	var last time.Time
	for _, d := range dates {
		day := toDay(d)
		days[day] = true
		if day.After(last) {
			last = day
		}
	}

	s := Streaks{TotalDays: len(days)}
	lastDay := last
	s.LastCheckin = &lastDay

	todayDay := toDay(today)
	s.CheckedToday = days[todayDay]

	// Longest streak: walk distinct days in any order by extending runs.
	for day := range days {
		if days[day.AddDate(0, 0, -1)] {
			continue // not a run start
		}
		length := 1
		for days[day.AddDate(0, 0, length)] {
			length++
		}
		if length > s.Longest {
			s.Longest = length
		}
	}

	// Current streak counts back from today, or from yesterday if today is
	// still pending.
	anchor := todayDay
	if !days[anchor] {
		anchor = anchor.AddDate(0, 0, -1)
	}
	for days[anchor] {
		s.Current++
		anchor = anchor.AddDate(0, 0, -1)
	}

	return s
}

func toDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
