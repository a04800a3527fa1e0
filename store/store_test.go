package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/worktrack-app/worktrack/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "worktrack.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestActiveSessionRoundTrip(t *testing.T) {
	c := newTestClient(t)

	got, err := c.ActiveSession()
	if err != nil {
		t.Fatal(err)
	}

	if got != nil {
		t.Fatalf("expected no session in a fresh store, got %+v", got)
	}

	sess := &models.ActiveSession{
		Date:               "2024-11-03",
		UserName:           "ada",
		SessionNo:          2,
		StartTime:          "09:00",
		StartTimeFull:      time.Date(2024, 11, 3, 9, 0, 0, 0, time.UTC),
		Status:             models.StatusInProgress,
		TotalPausedSeconds: 90,
		LastReminderTime:   time.Date(2024, 11, 3, 9, 0, 0, 0, time.UTC),
	}

	if err := c.SaveActiveSession(sess); err != nil {
		t.Fatal(err)
	}

	got, err = c.ActiveSession()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(sess, got); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}

	if err := c.DeleteActiveSession(); err != nil {
		t.Fatal(err)
	}

	got, err = c.ActiveSession()
	if err != nil {
		t.Fatal(err)
	}

	if got != nil {
		t.Errorf("expected session to be deleted, got %+v", got)
	}
}

func TestPreferences(t *testing.T) {
	c := newTestClient(t)

	name, err := c.UserName()
	if err != nil {
		t.Fatal(err)
	}

	if name != "" {
		t.Errorf("expected empty user name, got %q", name)
	}

	if err := c.SetUserName("grace"); err != nil {
		t.Fatal(err)
	}

	name, _ = c.UserName()
	if name != "grace" {
		t.Errorf("expected user name to be grace, got %q", name)
	}

	interval, stored, err := c.ReminderInterval()
	if err != nil {
		t.Fatal(err)
	}

	if interval != 0 || stored {
		t.Errorf(
			"expected no stored interval by default, got %v (stored=%t)",
			interval,
			stored,
		)
	}

	if err := c.SetReminderInterval(5 * time.Minute); err != nil {
		t.Fatal(err)
	}

	interval, stored, _ = c.ReminderInterval()
	if interval != 5*time.Minute || !stored {
		t.Errorf(
			"expected stored interval of 5m, got %v (stored=%t)",
			interval,
			stored,
		)
	}
}

func TestReminderIntervalStoredZero(t *testing.T) {
	c := newTestClient(t)

	if err := c.SetReminderInterval(0); err != nil {
		t.Fatal(err)
	}

	// an explicit 0 is a real preference, not an unset one
	interval, stored, err := c.ReminderInterval()
	if err != nil {
		t.Fatal(err)
	}

	if interval != 0 || !stored {
		t.Errorf(
			"expected a stored interval of 0, got %v (stored=%t)",
			interval,
			stored,
		)
	}
}

func TestSecondClientIsLockedOut(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "worktrack.db")

	c, err := NewClient(dbPath)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	_, err = NewClient(dbPath)
	if err != errWorktrackRunning {
		t.Fatalf("expected %v, but got: %v", errWorktrackRunning, err)
	}
}
