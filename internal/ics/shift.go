// Package ics rebases iCalendar timetables. University timetable exports
// cover a fixed set of dates; shifting every timestamp by one delta lets the
// same timetable be reused for a new term starting on a chosen date.
package ics

import (
	"errors"
	"regexp"
	"time"
)

// stampRe matches iCalendar local timestamps of the form YYYYMMDDTHHMMSS.
// A trailing Z (UTC stamps) is preserved by matching only the local part.
var stampRe = regexp.MustCompile(`\d{8}T\d{6}`)

const stampLayout = "20060102T150405"

// ErrNoTimestamps is returned when the input contains nothing to shift.
var ErrNoTimestamps = errors.New("no timestamps found in ICS content")

// Delta computes the shift that moves the earliest timestamp in content onto
// targetDate while keeping its time of day.
func Delta(content []byte, targetDate time.Time) (time.Duration, error) {
	var earliest time.Time
	for _, raw := range stampRe.FindAll(content, -1) {
		t, err := time.Parse(stampLayout, string(raw))
		if err != nil {
			continue
		}
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
	}
	if earliest.IsZero() {
		return 0, ErrNoTimestamps
	}

	target := time.Date(
		targetDate.Year(), targetDate.Month(), targetDate.Day(),
		earliest.Hour(), earliest.Minute(), earliest.Second(), 0, time.UTC)
	return target.Sub(earliest), nil
}

// Shift rewrites every timestamp in content so the earliest one lands on
// targetDate (same time of day), and reports the delta applied. Timestamps
// that fail to parse (impossible dates that happen to match the pattern) are
// left untouched.
func Shift(content []byte, targetDate time.Time) ([]byte, time.Duration, error) {
	delta, err := Delta(content, targetDate)
	if err != nil {
		return nil, 0, err
	}

	shifted := stampRe.ReplaceAllFunc(content, func(raw []byte) []byte {
		t, err := time.Parse(stampLayout, string(raw))
		if err != nil {
			return raw
		}
		return []byte(t.Add(delta).Format(stampLayout))
	})
	return shifted, delta, nil
}
