// Package models defines the work session records shared across packages.
package models

import "time"

// Status is the progress state of a work session.
type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusPaused     Status = "Paused"
	StatusCompleted  Status = "Completed"
	StatusBlocked    Status = "Blocked"
)

// ApprovalState is the review state of a finalized session.
type ApprovalState string

const (
	ApprovalPending      ApprovalState = "Pending"
	ApprovalInReviewing  ApprovalState = "In Reviewing"
	ApprovalReworkNeeded ApprovalState = "Rework Needed"
	ApprovalApproved     ApprovalState = "Approved"
)

// Record is a finalized work session as persisted in the remote store.
// Dates are local calendar days (YYYY-MM-DD) and clock times are HH:MM.
type Record struct {
	RecordID        string        `json:"recordId"`
	Date            string        `json:"date"`
	UserName        string        `json:"userName"`
	SessionNo       int           `json:"sessionNo"`
	StartTime       string        `json:"startTime"`
	EndTime         string        `json:"endTime"`
	Duration        string        `json:"duration"`
	WorkDescription string        `json:"workDescription"`
	Project         string        `json:"project"`
	Category        string        `json:"category"`
	Status          Status        `json:"status"`
	ApprovedState   ApprovalState `json:"approvedState"`
	ApprovedBy      string        `json:"approvedBy"`
}

// ActiveSession is the single in-progress session for the current user.
// It lives only in the local store (under the activeWorkSession key)
// until it is finalized into one or two Records.
type ActiveSession struct {
	Date               string    `json:"date"`
	UserName           string    `json:"userName"`
	SessionNo          int       `json:"sessionNo"`
	StartTime          string    `json:"startTime"`
	StartTimeFull      time.Time `json:"startTimeFull"`
	Status             Status    `json:"status"`
	TotalPausedSeconds int       `json:"totalPausedSeconds"`
	// LastPauseTime is non-zero iff Status is Paused.
	LastPauseTime    time.Time `json:"lastPauseTime"`
	LastReminderTime time.Time `json:"lastReminderTime"`
}

// ElapsedSeconds reports the worked time at the query instant, excluding
// accumulated pauses and, while paused, the open pause interval. It is a
// pure function of the session state and now, so it is safe to call on
// every display tick.
func (a *ActiveSession) ElapsedSeconds(now time.Time) int {
	if a == nil || a.StartTimeFull.IsZero() {
		return 0
	}

	elapsed := now.Sub(a.StartTimeFull)
	elapsed -= time.Duration(a.TotalPausedSeconds) * time.Second

	if !a.LastPauseTime.IsZero() {
		elapsed -= now.Sub(a.LastPauseTime)
	}

	secs := int(elapsed.Seconds())
	if secs < 0 {
		secs = 0
	}

	return secs
}

// Paused reports whether the session is currently paused.
func (a *ActiveSession) Paused() bool {
	return a != nil && a.Status == StatusPaused
}
