package tracker

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/worktrack-app/worktrack/config"
	"github.com/worktrack-app/worktrack/internal/models"
	"github.com/worktrack-app/worktrack/remote"
	"github.com/worktrack-app/worktrack/store"
	"github.com/worktrack-app/worktrack/syncer"
)

type fakeRemote struct {
	mu      sync.Mutex
	records map[string]models.Record
	nextID  int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		records: make(map[string]models.Record),
		nextID:  1,
	}
}

func (f *fakeRemote) List(
	_ context.Context,
	_ remote.Filter,
) ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]models.Record, 0, len(f.records))
	for _, rec := range f.records {
		result = append(result, rec)
	}

	return result, nil
}

func (f *fakeRemote) Create(
	_ context.Context,
	rec models.Record,
) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := strconv.Itoa(f.nextID)
	f.nextID++

	rec.RecordID = id
	f.records[id] = rec

	return id, nil
}

func (f *fakeRemote) Update(_ context.Context, rec models.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.records[rec.RecordID] = rec

	return nil
}

func (f *fakeRemote) Delete(_ context.Context, recordID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.records, recordID)

	return nil
}

func (f *fakeRemote) created() []models.Record {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]models.Record, 0, len(f.records))
	for _, rec := range f.records {
		result = append(result, rec)
	}

	return result
}

func at(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		t.Fatal(err)
	}

	return ts
}

func newTestTracker(t *testing.T) (*Tracker, *fakeRemote) {
	t.Helper()

	rem := newFakeRemote()

	s := syncer.New(rem, nil)

	db := store.NewMemory()

	err := db.SetUserName("ada")
	if err != nil {
		t.Fatal(err)
	}

	tr, err := New(db, s, &config.TrackerConfig{
		UserName:         "ada",
		ReminderInterval: 30 * time.Minute,
	})
	if err != nil {
		t.Fatal(err)
	}

	return tr, rem
}

func TestSessionLifecycle(t *testing.T) {
	tr, rem := newTestTracker(t)

	start := at(t, "2024-03-11 09:00")

	err := tr.StartSession(start)
	if err != nil {
		t.Fatal(err)
	}

	if tr.Current == nil {
		t.Fatal("expected an active session after start")
	}

	if tr.Current.SessionNo != 1 {
		t.Fatalf(
			"expected session number to be 1, but got: %d",
			tr.Current.SessionNo,
		)
	}

	err = tr.PauseSession(at(t, "2024-03-11 09:10"))
	if err != nil {
		t.Fatal(err)
	}

	if !tr.Current.Paused() {
		t.Fatal("expected session to be paused")
	}

	err = tr.ResumeSession(at(t, "2024-03-11 09:15"))
	if err != nil {
		t.Fatal(err)
	}

	if tr.Current.TotalPausedSeconds != 300 {
		t.Fatalf(
			"expected total paused seconds to be 300, but got: %d",
			tr.Current.TotalPausedSeconds,
		)
	}

	err = tr.StopSession(Annotation{
		WorkDescription: "drafting the quarterly report",
		Project:         "Reporting",
	}, at(t, "2024-03-11 09:20"))
	if err != nil {
		t.Fatal(err)
	}

	if tr.Current != nil {
		t.Fatal("expected no active session after stop")
	}

	tr.sync.Wait()

	created := rem.created()
	if len(created) != 1 {
		t.Fatalf("expected 1 record, but got: %d", len(created))
	}

	got := created[0]
	got.RecordID = ""

	want := models.Record{
		Date:            "2024-03-11",
		UserName:        "ada",
		SessionNo:       1,
		StartTime:       "09:00",
		EndTime:         "09:20",
		Duration:        "15 mins",
		WorkDescription: "drafting the quarterly report",
		Project:         "Reporting",
		Status:          models.StatusCompleted,
		ApprovedState:   models.ApprovalPending,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestStartSessionRejectsFutureStart(t *testing.T) {
	tr, _ := newTestTracker(t)

	tr.clock = func() time.Time {
		return at(t, "2024-03-11 09:00")
	}

	err := tr.StartSession(at(t, "2024-03-11 10:00"))
	if err != errFutureStart {
		t.Fatalf("expected %v, but got: %v", errFutureStart, err)
	}
}

func TestStartSessionRejectsSecondSession(t *testing.T) {
	tr, _ := newTestTracker(t)

	err := tr.StartSession(at(t, "2024-03-11 09:00"))
	if err != nil {
		t.Fatal(err)
	}

	err = tr.StartSession(at(t, "2024-03-11 09:30"))
	if err != errSessionInProgress {
		t.Fatalf("expected %v, but got: %v", errSessionInProgress, err)
	}
}

func TestStartSessionRequiresUserName(t *testing.T) {
	rem := newFakeRemote()

	tr, err := New(
		store.NewMemory(),
		syncer.New(rem, nil),
		&config.TrackerConfig{},
	)
	if err != nil {
		t.Fatal(err)
	}

	err = tr.StartSession(at(t, "2024-03-11 09:00"))
	if err != errNoUserName {
		t.Fatalf("expected %v, but got: %v", errNoUserName, err)
	}
}

func TestStopSessionWhilePausedEndsPause(t *testing.T) {
	tr, rem := newTestTracker(t)

	err := tr.StartSession(at(t, "2024-03-11 09:00"))
	if err != nil {
		t.Fatal(err)
	}

	err = tr.PauseSession(at(t, "2024-03-11 09:30"))
	if err != nil {
		t.Fatal(err)
	}

	err = tr.StopSession(Annotation{
		WorkDescription: "code review",
	}, at(t, "2024-03-11 09:45"))
	if err != nil {
		t.Fatal(err)
	}

	tr.sync.Wait()

	created := rem.created()
	if len(created) != 1 {
		t.Fatalf("expected 1 record, but got: %d", len(created))
	}

	// the concluding pause (09:30 to 09:45) is excluded
	if created[0].Duration != "30 mins" {
		t.Errorf(
			"expected duration to be '30 mins', but got: %s",
			created[0].Duration,
		)
	}
}

func TestPauseStateGuards(t *testing.T) {
	tr, _ := newTestTracker(t)

	err := tr.PauseSession(at(t, "2024-03-11 09:00"))
	if err != errNoActiveSession {
		t.Fatalf("expected %v, but got: %v", errNoActiveSession, err)
	}

	err = tr.StartSession(at(t, "2024-03-11 09:00"))
	if err != nil {
		t.Fatal(err)
	}

	err = tr.ResumeSession(at(t, "2024-03-11 09:05"))
	if err != errNotPaused {
		t.Fatalf("expected %v, but got: %v", errNotPaused, err)
	}

	err = tr.PauseSession(at(t, "2024-03-11 09:10"))
	if err != nil {
		t.Fatal(err)
	}

	err = tr.PauseSession(at(t, "2024-03-11 09:15"))
	if err != errAlreadyPaused {
		t.Fatalf("expected %v, but got: %v", errAlreadyPaused, err)
	}
}

func TestStoredZeroIntervalDisablesCheckIns(t *testing.T) {
	rem := newFakeRemote()
	db := store.NewMemory()

	err := db.SetUserName("ada")
	if err != nil {
		t.Fatal(err)
	}

	// the user disabled check-ins; the config default must not
	// resurrect them
	err = db.SetReminderInterval(0)
	if err != nil {
		t.Fatal(err)
	}

	tr, err := New(db, syncer.New(rem, nil), &config.TrackerConfig{
		UserName:         "ada",
		ReminderInterval: 30 * time.Minute,
	})
	if err != nil {
		t.Fatal(err)
	}

	if tr.reminder.Interval != 0 {
		t.Fatalf(
			"expected reminder interval to be 0, but got: %v",
			tr.reminder.Interval,
		)
	}

	err = tr.StartSession(at(t, "2024-03-11 09:00"))
	if err != nil {
		t.Fatal(err)
	}

	if tr.reminder.Due(tr.Current, at(t, "2024-03-11 10:00")) {
		t.Fatal("expected no check-in to be due with a 0 interval")
	}
}

func TestStatusLine(t *testing.T) {
	start := at(t, "2024-03-11 09:00")

	cases := []struct {
		name string
		sess *models.ActiveSession
		now  time.Time
		want string
	}{
		{
			name: "no session",
			now:  start,
			want: "No session in progress",
		},
		{
			name: "working",
			sess: &models.ActiveSession{
				Date:          "2024-03-11",
				SessionNo:     2,
				StartTime:     "09:00",
				StartTimeFull: start,
				Status:        models.StatusInProgress,
			},
			now:  start.Add(25 * time.Minute),
			want: "[Session 2] working since 09:00 (00:25:00, 2024-03-11)",
		},
		{
			name: "paused",
			sess: &models.ActiveSession{
				Date:          "2024-03-11",
				SessionNo:     1,
				StartTime:     "09:00",
				StartTimeFull: start,
				Status:        models.StatusPaused,
				LastPauseTime: start.Add(10 * time.Minute),
			},
			now:  start.Add(25 * time.Minute),
			want: "[Session 1] paused since 09:00 (00:10:00, 2024-03-11)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := statusLine(tc.sess, tc.now)
			if got != tc.want {
				t.Errorf("expected %q, but got: %q", tc.want, got)
			}
		})
	}
}

func TestWriteStatusRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	want := Status{
		StartTime:      at(t, "2024-03-11 09:00"),
		UserName:       "ada",
		Date:           "2024-03-11",
		SessionNo:      3,
		ElapsedSeconds: 1500,
		Paused:         true,
	}

	err := writeStatus(path, want)
	if err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got Status

	err = json.Unmarshal(b, &got)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	rem := newFakeRemote()
	db := store.NewMemory()

	err := db.SetUserName("ada")
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.TrackerConfig{UserName: "ada"}

	tr, err := New(db, syncer.New(rem, nil), cfg)
	if err != nil {
		t.Fatal(err)
	}

	err = tr.StartSession(at(t, "2024-03-11 09:00"))
	if err != nil {
		t.Fatal(err)
	}

	// a fresh tracker on the same store adopts the running session
	tr2, err := New(db, syncer.New(rem, nil), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if tr2.Current == nil {
		t.Fatal("expected the session to be recovered")
	}

	if tr2.Current.StartTime != "09:00" {
		t.Errorf(
			"expected recovered start time to be 09:00, but got: %s",
			tr2.Current.StartTime,
		)
	}
}
