package store

import (
	"sync"
	"time"

	"github.com/worktrack-app/worktrack/internal/models"
)

// Memory is an in-memory DB used in tests and dry runs.
type Memory struct {
	mu          sync.RWMutex
	sess        *models.ActiveSession
	userName    string
	interval    time.Duration
	intervalSet bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ActiveSession() (*models.ActiveSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.sess == nil {
		return nil, nil
	}

	sess := *m.sess

	return &sess, nil
}

func (m *Memory) SaveActiveSession(sess *models.ActiveSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := *sess
	m.sess = &s

	return nil
}

func (m *Memory) DeleteActiveSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sess = nil

	return nil
}

func (m *Memory) UserName() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.userName, nil
}

func (m *Memory) SetUserName(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.userName = name

	return nil
}

func (m *Memory) ReminderInterval() (time.Duration, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.interval, m.intervalSet, nil
}

func (m *Memory) SetReminderInterval(d time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.interval = d
	m.intervalSet = true

	return nil
}

func (m *Memory) Open() error { return nil }

func (m *Memory) Close() error { return nil }
