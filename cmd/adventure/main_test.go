package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jwebster45206/room-engine/internal/config"
	"github.com/jwebster45206/room-engine/internal/rooms"
)

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		start      string
		variant    string
		input      string
		wantCode   int
		wantOutput []string
	}{
		{
			name:       "quit on the first turn",
			start:      rooms.StartLocation,
			input:      "q\n",
			wantCode:   0,
			wantOutput: []string{"developer's test room", "> "},
		},
		{
			name:       "quit after playing",
			start:      rooms.StartLocation,
			input:      "get golden key\ni\nn\nuse golden key on chest\nQuit\n",
			wantCode:   0,
			wantOutput: []string{"You pick up the gold key.", "Golden Key", "found a sword inside!"},
		},
		{
			name:       "auto variant",
			start:      rooms.StartLocation,
			variant:    rooms.VariantAuto,
			input:      "take key\nn\nquit\n",
			wantCode:   0,
			wantOutput: []string{"Your golden key fits its lock."},
		},
		{
			name:       "unknown start location",
			start:      "nowhere",
			input:      "",
			wantCode:   1,
			wantOutput: []string{"Attempting to access a room that doesn't exist."},
		},
		{
			name:     "unknown variant",
			start:    rooms.StartLocation,
			variant:  "haunted",
			input:    "q\n",
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variant := tt.variant
			if variant == "" {
				variant = rooms.VariantLocked
			}
			cfg := &config.Config{
				StartLocation: tt.start,
				RoomVariant:   variant,
				TextWidth:     80,
			}
			out := &bytes.Buffer{}
			log := slog.New(slog.NewTextHandler(io.Discard, nil))

			code := run(context.Background(), cfg, strings.NewReader(tt.input), out, log)
			if code != tt.wantCode {
				t.Errorf("run() = %d, want %d\noutput:\n%s", code, tt.wantCode, out.String())
			}
			for _, want := range tt.wantOutput {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output is missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &config.Config{StartLocation: rooms.StartLocation, RoomVariant: rooms.VariantLocked, TextWidth: 80}
	code := run(ctx, cfg, strings.NewReader(""), io.Discard, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}
