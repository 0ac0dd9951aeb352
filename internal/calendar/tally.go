// Package calendar backs study tracking with a Google Calendar: studying is
// planned as events on a dedicated calendar, and the dashboard reports how
// many hours are scheduled today and how many are already behind you.
package calendar

import (
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

// DaySummary reports one day's study calendar state.
type DaySummary struct {
	Date           string  `json:"date"`
	Events         int     `json:"events"`
	ScheduledHours float64 `json:"scheduled_hours"`
	CompletedHours float64 `json:"completed_hours"`
}

// TallyHours sums event durations. Scheduled counts every event in full;
// completed counts only time already elapsed at now, so an in-progress
// session contributes partially. All-day events (date with no dateTime)
// carry no duration and are skipped.
func TallyHours(events []*gcal.Event, now time.Time) (scheduled, completed float64) {
	for _, ev := range events {
		start, okStart := eventTime(ev.Start)
		end, okEnd := eventTime(ev.End)
		if !okStart || !okEnd || !end.After(start) {
			continue
		}
		scheduled += end.Sub(start).Hours()

		done := end
		if done.After(now) {
			done = now
		}
		if done.After(start) {
			completed += done.Sub(start).Hours()
		}
	}
	return scheduled, completed
}

// eventTime extracts a concrete instant from an event boundary. Timed events
// carry DateTime; all-day events carry only Date and are reported as not ok.
func eventTime(edt *gcal.EventDateTime) (time.Time, bool) {
	if edt == nil || edt.DateTime == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, edt.DateTime)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DayBounds returns the [start, end) instants of the calendar day containing
// t, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
