package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwebster45206/room-engine/pkg/state"
)

// Journal records completed turns for a game session.
// Journals are write-mostly: gameplay never reads them back.
type Journal interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Record appends one turn to the session's journal.
	Record(ctx context.Context, rec state.TurnRecord) error
	// Entries returns the session's turns in the order they were recorded.
	Entries(ctx context.Context, gameStateID uuid.UUID) ([]state.TurnRecord, error)
}

// NopJournal discards every record. It is used when no journal backend is configured.
type NopJournal struct{}

var _ Journal = NopJournal{}

func (NopJournal) Ping(ctx context.Context) error { return nil }
func (NopJournal) Close() error { return nil }
func (NopJournal) Record(ctx context.Context, rec state.TurnRecord) error { return nil }
func (NopJournal) Entries(ctx context.Context, gameStateID uuid.UUID) ([]state.TurnRecord, error) {
	return nil, nil
}
