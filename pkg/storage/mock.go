package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jwebster45206/room-engine/pkg/state"
)

// MockJournal is an in-memory Journal for testing
type MockJournal struct {
	mu          sync.RWMutex
	entries     map[uuid.UUID][]state.TurnRecord
	recordError error
}

// Ensure MockJournal implements Journal interface
var _ Journal = (*MockJournal)(nil)

// NewMockJournal creates a new mock journal
func NewMockJournal() *MockJournal {
	return &MockJournal{
		entries: make(map[uuid.UUID][]state.TurnRecord),
	}
}

// SetRecordError configures the mock to fail every Record call with the given error
func (m *MockJournal) SetRecordError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordError = err
}

func (m *MockJournal) Ping(ctx context.Context) error {
	return nil
}

func (m *MockJournal) Close() error {
	return nil
}

func (m *MockJournal) Record(ctx context.Context, rec state.TurnRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recordError != nil {
		return m.recordError
	}
	m.entries[rec.GameStateID] = append(m.entries[rec.GameStateID], rec)
	return nil
}

func (m *MockJournal) Entries(ctx context.Context, gameStateID uuid.UUID) ([]state.TurnRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	recs := m.entries[gameStateID]
	out := make([]state.TurnRecord, len(recs))
	copy(out, recs)
	return out, nil
}
