package main

import (
	"context"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/room-engine/pkg/state"
	"github.com/jwebster45206/room-engine/pkg/storage"
)

// lineFeed is the session's input: each line typed into the console
// arrives on lines. Closing it cancels the game first, then ends input
// with io.EOF, so the read that wakes up belongs to an abandoned turn.
type lineFeed struct {
	lines   chan string
	pending []byte
	once    sync.Once
	cancel  context.CancelFunc
}

// newLineFeed buffers up to buffer lines. cancel may be nil.
func newLineFeed(buffer int, cancel context.CancelFunc) *lineFeed {
	return &lineFeed{lines: make(chan string, buffer), cancel: cancel}
}

func (f *lineFeed) Read(p []byte) (int, error) {
	if len(f.pending) == 0 {
		line, ok := <-f.lines
		if !ok {
			return 0, io.EOF
		}
		f.pending = []byte(line + "\n")
	}
	n := copy(p, f.pending)
	f.pending = f.pending[n:]
	return n, nil
}

// Send queues a line without blocking. It reports false when the queue is full
// or the feed has been closed.
func (f *lineFeed) Send(line string) (sent bool) {
	defer func() {
		if recover() != nil {
			sent = false
		}
	}()
	select {
	case f.lines <- line:
		return true
	default:
		return false
	}
}

func (f *lineFeed) Close() {
	f.once.Do(func() {
		if f.cancel != nil {
			f.cancel()
		}
		close(f.lines)
	})
}

// sender is the part of *tea.Program the game goroutine talks to.
type sender interface {
	Send(msg tea.Msg)
}

// outputWriter forwards narrative text to the UI.
type outputWriter struct {
	program sender
}

func (w outputWriter) Write(p []byte) (int, error) {
	w.program.Send(outputMsg(string(p)))
	return len(p), nil
}

// relayJournal passes each turn to the UI for the status panel, then on to
// the configured journal.
type relayJournal struct {
	storage.Journal
	program sender
}

func (j relayJournal) Record(ctx context.Context, rec state.TurnRecord) error {
	j.program.Send(turnMsg{rec: rec})
	return j.Journal.Record(ctx, rec)
}
