// Command journal prints the recorded turns of a game session.
//
//	$ journal <gamestate-id>
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/room-engine/internal/config"
	"github.com/jwebster45206/room-engine/internal/logger"
	"github.com/jwebster45206/room-engine/internal/storage"
	"github.com/jwebster45206/room-engine/pkg/state"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <gamestate-id>\n", os.Args[0])
		os.Exit(1)
	}

	id, err := uuid.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid gamestate id: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.JournalEnabled() {
		fmt.Fprintln(os.Stderr, "REDIS_URL is not set; there is no journal to read.")
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	j, err := storage.NewRedisJournal(cfg.RedisURL, cfg.JournalTTL, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open journal: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = j.Close() // Ignore error in defer
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	recs, err := j.Entries(ctx, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read journal: %v\n", err)
		os.Exit(1)
	}
	if len(recs) == 0 {
		fmt.Println("No turns recorded for", id)
		return
	}

	for _, rec := range recs {
		fmt.Println(formatRecord(rec))
	}
}

func formatRecord(rec state.TurnRecord) string {
	outcome := "-> " + rec.Next
	if rec.Terminated {
		outcome = fmt.Sprintf("exit %d", rec.ExitCode)
	}
	intent := rec.Intent
	if intent == "" {
		intent = "(none)"
	}
	return fmt.Sprintf("%3d  %-12s %-28s %s  [inv: %s] [flags: %s]",
		rec.Turn, rec.Location, intent, outcome,
		strings.Join(rec.Inventory, ", "), strings.Join(rec.Flags, ", "))
}
