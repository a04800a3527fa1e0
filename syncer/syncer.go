// Package syncer keeps a local cache of session records consistent with
// the remote record store. Mutations apply to the cache first so the UI
// feels instant; remote calls complete in the background and a full
// reload is the recovery path whenever one fails.
package syncer

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/worktrack-app/worktrack/internal/models"
	"github.com/worktrack-app/worktrack/remote"
)

// tempIDPrefix marks locally-generated ids that the store has not
// confirmed yet.
const tempIDPrefix = "local-"

// NotifyFunc surfaces a background remote failure to the user without
// blocking the caller.
type NotifyFunc func(err error)

// Syncer owns the cached record collection. The cache is single-writer:
// interleaved background completions are absorbed by full-replace
// semantics (a later reload always wins) rather than merging.
type Syncer struct {
	mu      sync.Mutex
	remote  remote.Store
	filter  remote.Filter
	records []models.Record
	notify  NotifyFunc
	wg      sync.WaitGroup
}

// New wraps the remote store. notify is invoked for every background
// remote failure; nil disables reporting.
func New(store remote.Store, notify NotifyFunc) *Syncer {
	if notify == nil {
		notify = func(error) {}
	}

	return &Syncer{
		remote: store,
		notify: notify,
	}
}

// SetFilter sets the user/date window that Reload fetches.
func (s *Syncer) SetFilter(f remote.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = f
}

// Records returns a snapshot of the cached records.
func (s *Syncer) Records() []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Record, len(s.records))
	copy(out, s.records)

	return out
}

// NextSessionNo returns one past the highest session number recorded for
// the user on the given day, or 1 when the day has none. The maximum is
// used rather than the count so numbers stay unique after deletions that
// have not been renumbered remotely yet.
func (s *Syncer) NextSessionNo(userName, date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxNo := 0

	for i := range s.records {
		rec := &s.records[i]
		if rec.UserName == userName && rec.Date == date &&
			rec.SessionNo > maxNo {
			maxNo = rec.SessionNo
		}
	}

	return maxNo + 1
}

// Reload replaces the entire cache with the store's view. It is the
// consistency backstop after every failed background mutation.
func (s *Syncer) Reload(ctx context.Context) error {
	s.mu.Lock()
	f := s.filter
	s.mu.Unlock()

	recs, err := s.remote.List(ctx, f)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = recs
	s.mu.Unlock()

	return nil
}

// Create inserts the record into the cache under a temporary id and
// issues the remote create in the background. The returned record
// carries the temporary id. The optimistic insert is never rolled back
// on failure; the error is surfaced and a reload resynchronizes.
func (s *Syncer) Create(rec models.Record) models.Record {
	tempID := tempIDPrefix + uuid.NewString()
	rec.RecordID = tempID

	s.mu.Lock()
	s.records = append([]models.Record{rec}, s.records...)
	s.mu.Unlock()

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		// background calls are never cancelled; the session state was
		// already decoupled from this write
		ctx := context.Background()

		id, err := s.remote.Create(ctx, rec)
		if err != nil {
			s.notify(err)
			s.backgroundReload(ctx)

			return
		}

		if id != "" {
			s.mu.Lock()
			for i := range s.records {
				if s.records[i].RecordID == tempID {
					s.records[i].RecordID = id
					break
				}
			}
			s.mu.Unlock()
		}

		s.backgroundReload(ctx)
	}()

	return rec
}

// Update replaces the cached record by id, then issues the remote
// update in the background.
func (s *Syncer) Update(rec models.Record) {
	s.mu.Lock()
	for i := range s.records {
		if s.records[i].RecordID == rec.RecordID {
			s.records[i] = rec
			break
		}
	}
	s.mu.Unlock()

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ctx := context.Background()

		if err := s.remote.Update(ctx, rec); err != nil {
			s.notify(err)
		}

		s.backgroundReload(ctx)
	}()
}

// Delete removes the record from the cache, renumbers the surviving
// records for the same user and day, and then issues the remote delete.
// Only the records whose numbers actually changed are pushed as updates.
func (s *Syncer) Delete(recordID string) {
	s.mu.Lock()

	idx := -1

	for i := range s.records {
		if s.records[i].RecordID == recordID {
			idx = i
			break
		}
	}

	if idx == -1 {
		s.mu.Unlock()
		return
	}

	removed := s.records[idx]
	s.records = append(s.records[:idx], s.records[idx+1:]...)

	changed := renumber(s.records, removed.UserName, removed.Date)

	s.mu.Unlock()

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ctx := context.Background()

		if err := s.remote.Delete(ctx, recordID); err != nil {
			// the optimistic removal must not be left in place
			// unreconciled
			s.notify(err)
			s.backgroundReload(ctx)

			return
		}

		for _, rec := range changed {
			// unconfirmed records have no server id to address yet;
			// the reload below picks up their numbers
			if strings.HasPrefix(rec.RecordID, tempIDPrefix) {
				continue
			}

			if err := s.remote.Update(ctx, rec); err != nil {
				s.notify(err)
			}
		}

		s.backgroundReload(ctx)
	}()
}

// Wait blocks until all background mutations have settled.
func (s *Syncer) Wait() {
	s.wg.Wait()
}

func (s *Syncer) backgroundReload(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.notify(err)
	}
}
