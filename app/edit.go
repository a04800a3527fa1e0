package app

import (
	"time"

	"github.com/worktrack-app/worktrack/internal/duration"
	"github.com/worktrack-app/worktrack/internal/timeutil"
)

// recomputeDuration rebuilds a record's duration label from its clock
// bounds. An end before the start is taken as running past midnight, so
// the span wraps around rather than going negative.
func recomputeDuration(date, start, end string) (string, error) {
	startT, err := timeutil.ParseClock(date, start)
	if err != nil {
		return "", err
	}

	endT, err := timeutil.ParseClock(date, end)
	if err != nil {
		return "", err
	}

	if !endT.After(startT) {
		endT = endT.Add(24 * time.Hour)
	}

	return duration.Format(int(endT.Sub(startT).Seconds())), nil
}
