package store

import (
	"time"

	"github.com/worktrack-app/worktrack/internal/models"
)

// Keys under which the durable device state is cached. The active session
// must survive a process restart so a relaunch resumes the correct
// lifecycle state.
const (
	KeyActiveSession    = "activeWorkSession"
	KeyUserName         = "appUserName"
	KeyReminderInterval = "reminderInterval"
)

// DB is the local state storage interface.
type DB interface {
	// ActiveSession returns the cached in-progress session, or nil if
	// there is none.
	ActiveSession() (*models.ActiveSession, error)
	// SaveActiveSession overwrites the cached in-progress session.
	SaveActiveSession(sess *models.ActiveSession) error
	// DeleteActiveSession removes the cached in-progress session.
	DeleteActiveSession() error
	// UserName returns the stored user identity ("" if unset).
	UserName() (string, error)
	SetUserName(name string) error
	// ReminderInterval returns the stored check-in interval and whether
	// one has been stored at all. A stored interval of 0 disables
	// check-ins and must not be mistaken for "unset".
	ReminderInterval() (time.Duration, bool, error)
	SetReminderInterval(d time.Duration) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
