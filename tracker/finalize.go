package tracker

import (
	"time"

	"github.com/worktrack-app/worktrack/internal/duration"
	"github.com/worktrack-app/worktrack/internal/models"
	"github.com/worktrack-app/worktrack/internal/timeutil"
)

const startOfDayClock = "00:00"

// nextNoFunc resolves the next session number for a user on a date.
type nextNoFunc func(userName, date string) int

func recordStatus(note Annotation) models.Status {
	if note.Blocked {
		return models.StatusBlocked
	}

	return models.StatusCompleted
}

// buildRecords converts a finished session into its work records. A
// session that ran past midnight is split into one record per calendar
// day: the first ends at 23:59 on the start date, and the second covers
// midnight up to the stop time on the end date.
func buildRecords(
	sess *models.ActiveSession,
	note Annotation,
	now time.Time,
	next nextNoFunc,
) []models.Record {
	base := models.Record{
		Date:            sess.Date,
		UserName:        sess.UserName,
		SessionNo:       sess.SessionNo,
		StartTime:       sess.StartTime,
		WorkDescription: note.WorkDescription,
		Project:         note.Project,
		Category:        note.Category,
		Status:          recordStatus(note),
		ApprovedState:   models.ApprovalPending,
	}

	if timeutil.SameDay(sess.StartTimeFull, now) {
		base.EndTime = timeutil.Clock(now)
		base.Duration = duration.Format(sess.ElapsedSeconds(now))

		return []models.Record{base}
	}

	// split durations come from the wall-clock day boundaries rather
	// than the pause-adjusted session clock, so the two records always
	// account for the full span of each day
	first := base
	first.EndTime = timeutil.EndOfDayClock
	first.Duration = duration.Format(int(
		timeutil.RoundToEnd(sess.StartTimeFull).
			Sub(sess.StartTimeFull).
			Seconds(),
	))

	second := base
	second.Date = timeutil.Date(now)
	second.SessionNo = next(sess.UserName, second.Date)
	second.StartTime = startOfDayClock
	second.EndTime = timeutil.Clock(now)
	second.Duration = duration.Format(int(
		now.Sub(timeutil.RoundToStart(now)).Seconds(),
	))

	return []models.Record{first, second}
}

// SplitManual builds the work records for a session entered after the
// fact. An end time earlier than the start time is taken to mean the
// session crossed midnight.
func SplitManual(
	userName, date, start, end string,
	note Annotation,
	next nextNoFunc,
) ([]models.Record, error) {
	startT, err := timeutil.ParseClock(date, start)
	if err != nil {
		return nil, err
	}

	endT, err := timeutil.ParseClock(date, end)
	if err != nil {
		return nil, err
	}

	if endT.Equal(startT) {
		return nil, errZeroDuration
	}

	base := models.Record{
		Date:            date,
		UserName:        userName,
		SessionNo:       next(userName, date),
		StartTime:       timeutil.Clock(startT),
		WorkDescription: note.WorkDescription,
		Project:         note.Project,
		Category:        note.Category,
		Status:          recordStatus(note),
		ApprovedState:   models.ApprovalPending,
	}

	if endT.After(startT) {
		base.EndTime = timeutil.Clock(endT)
		base.Duration = duration.Format(int(endT.Sub(startT).Seconds()))

		return []models.Record{base}, nil
	}

	nextDay := startT.AddDate(0, 0, 1)
	nextDate := timeutil.Date(nextDay)

	endNext, err := timeutil.ParseClock(nextDate, end)
	if err != nil {
		return nil, err
	}

	first := base
	first.EndTime = timeutil.EndOfDayClock
	first.Duration = duration.Format(int(
		timeutil.RoundToEnd(startT).Sub(startT).Seconds(),
	))

	second := base
	second.Date = nextDate
	second.SessionNo = next(userName, nextDate)
	second.StartTime = startOfDayClock
	second.EndTime = timeutil.Clock(endNext)
	second.Duration = duration.Format(int(
		endNext.Sub(timeutil.RoundToStart(endNext)).Seconds(),
	))

	return []models.Record{first, second}, nil
}
