package location

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jwebster45206/room-engine/pkg/state"
	"github.com/jwebster45206/room-engine/pkg/storage"
)

// Dispatcher owns the current location identifier and drives the game loop.
type Dispatcher struct {
	registry *Registry
	start    string
	dead     Handler
	journal  storage.Journal
	logger   *slog.Logger
}

type DispatcherOpt func(*Dispatcher)

// WithJournal records every completed turn to j.
func WithJournal(j storage.Journal) DispatcherOpt {
	return func(d *Dispatcher) {
		d.journal = j
	}
}

func WithLogger(logger *slog.Logger) DispatcherOpt {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithDeadLocation replaces the handler used for unregistered identifiers.
func WithDeadLocation(h Handler) DispatcherOpt {
	return func(d *Dispatcher) {
		d.dead = h
	}
}

// NewDispatcher takes ownership of the registry; it can no longer be modified.
func NewDispatcher(registry *Registry, start string, opts ...DispatcherOpt) (*Dispatcher, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}
	if start == "" {
		return nil, fmt.Errorf("start location: %w", ErrEmptyLocationID)
	}

	d := &Dispatcher{
		registry: registry,
		start:    start,
		dead:     deadLocation{},
		journal:  storage.NopJournal{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	registry.freeze()
	if _, ok := registry.Lookup(start); !ok {
		d.logger.Warn("Start location is not registered", "location", start)
	}
	return d, nil
}

// Run plays turns until a handler returns a terminal result, and returns its
// exit code. The session's state is positioned at the start location first.
// When ctx is cancelled Run returns ExitCancelled and ctx's error. A turn
// interrupted by cancellation is not journaled.
func (d *Dispatcher) Run(ctx context.Context, s *Session) (int, error) {
	current := d.start
	s.State.Location = current

	for {
		if err := ctx.Err(); err != nil {
			return ExitCancelled, err
		}

		h, ok := d.registry.Lookup(current)
		if !ok {
			d.logger.Error("Location not found", "location", current, "gamestate_id", s.State.ID)
			h = d.dead
		}

		s.beginTurn()
		s.State.Turn++
		res := h.Advance(s)
		s.State.UpdatedAt = time.Now()
		if ok && s.readCount != 1 {
			d.logger.Warn("Handler did not read exactly one intent", "location", current, "reads", s.readCount)
		}

		if err := ctx.Err(); err != nil {
			d.logger.Debug("Turn abandoned", "location", current, "turn", s.State.Turn)
			return ExitCancelled, err
		}
		d.record(ctx, s, current, res)

		if code, done := res.Terminated(); done {
			d.logger.Debug("Game terminated", "location", current, "exit_code", code, "turns", s.State.Turn)
			return code, nil
		}

		next, _ := res.Next()
		if next != current {
			d.logger.Debug("Location changed", "from", current, "to", next, "intent", s.lastIntent.String())
		}
		current = next
		s.State.Location = current
	}
}

func (d *Dispatcher) record(ctx context.Context, s *Session, location string, res Result) {
	rec := state.NewTurnRecord(s.State, location)
	rec.Input = strings.TrimRight(s.lastLine, "\r\n")
	if s.readCount > 0 {
		rec.Intent = s.lastIntent.String()
	}
	if code, done := res.Terminated(); done {
		rec.Terminated = true
		rec.ExitCode = code
	} else {
		rec.Next, _ = res.Next()
	}

	if err := d.journal.Record(ctx, rec); err != nil {
		d.logger.Warn("Failed to record turn", "gamestate_id", s.State.ID, "turn", rec.Turn, "error", err)
	}
}
