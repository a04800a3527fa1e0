package tracker

import (
	"time"

	"github.com/worktrack-app/worktrack/internal/models"
)

// Reminder tracks when the periodic "still working?" check-in is due.
type Reminder struct {
	Interval time.Duration
	open     bool
}

// Due reports whether a check-in should be raised. It returns true at
// most once per interval: once raised, the check-in stays open until it
// is acknowledged, and no further one is due in the meantime.
func (r *Reminder) Due(sess *models.ActiveSession, now time.Time) bool {
	if r.open || r.Interval <= 0 {
		return false
	}

	if sess == nil || sess.Paused() {
		return false
	}

	base := sess.LastReminderTime
	if base.IsZero() {
		base = sess.StartTimeFull
	}

	if now.Sub(base) < r.Interval {
		return false
	}

	r.open = true

	return true
}

// Open reports whether a raised check-in is awaiting an answer.
func (r *Reminder) Open() bool {
	return r.open
}

// Ack answers the open check-in and restarts the interval from now.
func (r *Reminder) Ack(sess *models.ActiveSession, now time.Time) {
	r.open = false

	if sess != nil {
		sess.LastReminderTime = now
	}
}
