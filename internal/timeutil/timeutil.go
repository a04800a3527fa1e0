// Package timeutil provides utility functions for working with local
// calendar dates and wall-clock times.
package timeutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar-day format used in session records.
	DateLayout = "2006-01-02"
	// ClockLayout is the wall-clock format used in session records.
	ClockLayout = "15:04"
	// EndOfDayClock is the displayed end time of the first segment of an
	// overnight session.
	EndOfDayClock = "23:59"
)

// Date formats a time as its local calendar day (YYYY-MM-DD).
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// Clock formats a time as HH:MM.
func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

// SameDay reports whether two instants fall on the same local calendar
// day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the displayed end of the day
// (23:59:00). The displayed end time is authoritative for duration math.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		0,
		0,
		t.Location(),
	)
}

// ParseClock interprets an HH:MM string on the given calendar day
// (YYYY-MM-DD) in the local time zone.
func ParseClock(date, clock string) (time.Time, error) {
	return time.ParseInLocation(
		DateLayout+" "+ClockLayout,
		date+" "+clock,
		time.Local,
	)
}

// HMS splits a second count into hours, minutes, and seconds for display.
func HMS(totalSeconds int) (h, m, s int) {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	return totalSeconds / 3600, totalSeconds % 3600 / 60, totalSeconds % 60
}

// FormatHMS renders a second count as a zero-padded HH:MM:SS clock.
func FormatHMS(totalSeconds int) string {
	h, m, s := HMS(totalSeconds)

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
