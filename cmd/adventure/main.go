package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jwebster45206/room-engine/internal/config"
	"github.com/jwebster45206/room-engine/internal/logger"
	"github.com/jwebster45206/room-engine/internal/rooms"
	"github.com/jwebster45206/room-engine/internal/storage"
	"github.com/jwebster45206/room-engine/pkg/location"
	"github.com/jwebster45206/room-engine/pkg/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(run(context.Background(), cfg, os.Stdin, os.Stdout, logger.Setup(cfg)))
}

// run plays one game over in and out and returns the process exit code.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, log *slog.Logger) int {
	registry, err := rooms.NewRegistry(cfg.RoomVariant)
	if err != nil {
		log.Error("Failed to build rooms", "variant", cfg.RoomVariant, "error", err)
		return 1
	}

	journalCtx, journalCancel := context.WithTimeout(ctx, 10*time.Second)
	journal := storage.OpenJournal(journalCtx, cfg.RedisURL, cfg.JournalTTL, log)
	journalCancel()
	defer func() {
		if err := journal.Close(); err != nil {
			log.Warn("Failed to close turn journal", "error", err)
		}
	}()

	dispatcher, err := location.NewDispatcher(registry, cfg.StartLocation,
		location.WithLogger(log),
		location.WithJournal(journal))
	if err != nil {
		log.Error("Failed to create dispatcher", "error", err)
		return 1
	}

	gs := state.NewGameState(cfg.StartLocation)
	logger.WithGameState(log, gs.ID.String()).Info("Starting game",
		"variant", cfg.RoomVariant,
		"start", cfg.StartLocation,
		"journal", cfg.JournalEnabled())

	session := location.NewSession(gs, in, out, location.WithWidth(cfg.TextWidth))
	code, err := dispatcher.Run(ctx, session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", err)
		return 1
	}
	return code
}
