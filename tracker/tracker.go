// Package tracker operates the work session lifecycle and the interactive
// session view.
package tracker

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"

	bolt "go.etcd.io/bbolt"

	"github.com/worktrack-app/worktrack/config"
	"github.com/worktrack-app/worktrack/internal/models"
	"github.com/worktrack-app/worktrack/internal/timeutil"
	"github.com/worktrack-app/worktrack/store"
	"github.com/worktrack-app/worktrack/syncer"
)

// Annotation holds the details attached to a session when it is stopped.
type Annotation struct {
	WorkDescription string
	Project         string
	Category        string
	Blocked         bool
}

// Status is the session snapshot written to the status file while a
// session is running.
type Status struct {
	StartTime      time.Time `json:"start_time"`
	UserName       string    `json:"user_name"`
	Date           string    `json:"date"`
	SessionNo      int       `json:"session_no"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	Paused         bool      `json:"paused"`
}

// Tracker drives a work session from start to finish.
type Tracker struct {
	db       store.DB
	sync     *syncer.Syncer
	Opts     *config.TrackerConfig
	Current  *models.ActiveSession
	reminder *Reminder
	clock    func() time.Time

	// TUI state
	help     help.Model
	stopForm *huh.Form
	checkIn  *huh.Form
	note     Annotation
	stillOn  bool
	width    int
	quitting bool
}

// New creates a tracker backed by the given store and sync engine. Any
// interrupted session found in the store is adopted as the current one.
func New(
	db store.DB,
	sync *syncer.Syncer,
	cfg *config.TrackerConfig,
) (*Tracker, error) {
	t := &Tracker{
		db:    db,
		sync:  sync,
		Opts:  cfg,
		clock: time.Now,
		help:  help.New(),
		reminder: &Reminder{
			Interval: cfg.ReminderInterval,
		},
	}

	sess, err := db.ActiveSession()
	if err != nil {
		return nil, err
	}

	t.Current = sess

	// a stored interval wins over the config default, including an
	// explicit 0 that disables check-ins
	interval, stored, err := db.ReminderInterval()
	if err != nil {
		return nil, err
	}

	if stored {
		t.reminder.Interval = interval
	}

	return t, nil
}

// userName resolves the name work records are filed under, preferring
// the store over the config file.
func (t *Tracker) userName() string {
	name, err := t.db.UserName()
	if err == nil && name != "" {
		return name
	}

	return t.Opts.UserName
}

// StartSession begins a new work session at the specified time.
func (t *Tracker) StartSession(at time.Time) error {
	userName := t.userName()
	if userName == "" {
		return errNoUserName
	}

	if at.After(t.clock()) {
		return errFutureStart
	}

	existing, err := t.db.ActiveSession()
	if err != nil {
		return err
	}

	if existing != nil {
		return errSessionInProgress
	}

	sess := &models.ActiveSession{
		Date:             timeutil.Date(at),
		UserName:         userName,
		SessionNo:        t.sync.NextSessionNo(userName, timeutil.Date(at)),
		StartTime:        timeutil.Clock(at),
		StartTimeFull:    at,
		Status:           models.StatusInProgress,
		LastReminderTime: at,
	}

	err = t.db.SaveActiveSession(sess)
	if err != nil {
		return err
	}

	t.Current = sess

	return nil
}

// PauseSession suspends the running session so that the paused period is
// excluded from its duration.
func (t *Tracker) PauseSession(at time.Time) error {
	if t.Current == nil {
		return errNoActiveSession
	}

	if t.Current.Paused() {
		return errAlreadyPaused
	}

	t.Current.Status = models.StatusPaused
	t.Current.LastPauseTime = at

	return t.db.SaveActiveSession(t.Current)
}

// ResumeSession continues a paused session, folding the concluded pause
// into the session's total paused time.
func (t *Tracker) ResumeSession(at time.Time) error {
	if t.Current == nil {
		return errNoActiveSession
	}

	if !t.Current.Paused() {
		return errNotPaused
	}

	t.Current.TotalPausedSeconds += int(
		at.Sub(t.Current.LastPauseTime).Seconds(),
	)
	t.Current.LastPauseTime = time.Time{}
	t.Current.Status = models.StatusInProgress

	return t.db.SaveActiveSession(t.Current)
}

// StopSession ends the current session and submits the resulting work
// records to the sync engine. Sessions that ran past midnight produce one
// record per calendar day.
func (t *Tracker) StopSession(note Annotation, at time.Time) error {
	if t.Current == nil {
		return errNoActiveSession
	}

	// a concluding pause ends at the stop time
	if t.Current.Paused() {
		err := t.ResumeSession(at)
		if err != nil {
			return err
		}
	}

	records := buildRecords(t.Current, note, at, t.sync.NextSessionNo)

	slog.Debug("session finalized", slog.String("records", spew.Sdump(records)))

	// the session must be cleared before any remote work begins so that
	// a crash mid-sync cannot resurrect it
	err := t.db.DeleteActiveSession()
	if err != nil {
		return err
	}

	t.Current = nil

	_ = os.Remove(config.StatusFilePath())

	for i := range records {
		t.sync.Create(records[i])
	}

	return t.runSessionCmd(t.Opts.SessionCmd)
}

// AckReminder marks the periodic check-in as answered, restarting the
// reminder interval.
func (t *Tracker) AckReminder(at time.Time) error {
	if t.Current == nil {
		return errNoActiveSession
	}

	t.reminder.Ack(t.Current, at)

	return t.db.SaveActiveSession(t.Current)
}

// runSessionCmd executes the specified command.
func (t *Tracker) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

func (t *Tracker) writeStatusFile() error {
	if t.Current == nil {
		return nil
	}

	now := t.clock()

	s := Status{
		UserName:       t.Current.UserName,
		Date:           t.Current.Date,
		SessionNo:      t.Current.SessionNo,
		StartTime:      t.Current.StartTimeFull,
		ElapsedSeconds: t.Current.ElapsedSeconds(now),
		Paused:         t.Current.Paused(),
	}

	return writeStatus(config.StatusFilePath(), s)
}

func writeStatus(path string, s Status) (err error) {
	statusFile, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// statusLine renders the state of a persisted session. A session left
// behind by quitting the interactive view still counts as in progress.
func statusLine(sess *models.ActiveSession, now time.Time) string {
	if sess == nil {
		return "No session in progress"
	}

	state := "working"
	if sess.Paused() {
		state = "paused"
	}

	return fmt.Sprintf("[Session %d] %s since %s (%s, %s)",
		sess.SessionNo,
		state,
		sess.StartTime,
		timeutil.FormatHMS(sess.ElapsedSeconds(now)),
		sess.Date,
	)
}

// ReportStatus reports the persisted session state. When another
// worktrack process holds the database lock, the status file it
// maintains is consulted instead.
func ReportStatus() error {
	dbFilePath := config.DBFilePath()
	statusFilePath := config.StatusFilePath()

	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(dbFilePath, fileMode, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	if err == nil {
		_ = db.Close()

		client, err := store.NewClient(dbFilePath)
		if err != nil {
			return err
		}

		defer func() {
			_ = client.Close()
		}()

		sess, err := client.ActiveSession()
		if err != nil {
			return err
		}

		pterm.Println(statusLine(sess, time.Now()))

		return nil
	}

	if !errors.Is(err, bolt.ErrTimeout) {
		return err
	}

	fileBytes, err := os.ReadFile(statusFilePath)
	if err != nil {
		// missing file should not return an error
		return nil
	}

	var s Status

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return err
	}

	state := "working"
	if s.Paused {
		state = "paused"
	}

	pterm.Printfln("[Session %d] %s since %s (%s, %s)",
		s.SessionNo,
		state,
		s.StartTime.Format("03:04 PM"),
		timeutil.FormatHMS(s.ElapsedSeconds),
		s.Date,
	)

	return nil
}

// Run starts the interactive session view and blocks until it exits.
func (t *Tracker) Run() error {
	_, err := tea.NewProgram(t).Run()
	if err != nil {
		return err
	}

	t.sync.Wait()

	return nil
}
