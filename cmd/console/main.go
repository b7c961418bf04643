package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

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

	// The terminal belongs to the UI; logs go to a file only when asked for.
	var logOut io.Writer = io.Discard
	if path := os.Getenv("CONSOLE_LOG"); path != "" {
		f, err := tea.LogToFile(path, "console")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.SetupWriter(cfg, logOut)

	registry, err := rooms.NewRegistry(cfg.RoomVariant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build rooms: %v\n", err)
		os.Exit(1)
	}

	journalCtx, journalCancel := context.WithTimeout(context.Background(), 10*time.Second)
	journal := storage.OpenJournal(journalCtx, cfg.RedisURL, cfg.JournalTTL, log)
	journalCancel()
	defer func() {
		_ = journal.Close() // Ignore error in defer
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := newLineFeed(16, cancel)
	p := tea.NewProgram(NewConsoleUI(feed), tea.WithAltScreen())

	dispatcher, err := location.NewDispatcher(registry, cfg.StartLocation,
		location.WithLogger(log),
		location.WithJournal(relayJournal{Journal: journal, program: p}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create dispatcher: %v\n", err)
		os.Exit(1)
	}

	gs := state.NewGameState(cfg.StartLocation)
	session := location.NewSession(gs, feed, outputWriter{program: p},
		location.WithPrompt(""),
		location.WithWidth(cfg.TextWidth))

	go func() {
		code, err := dispatcher.Run(ctx, session)
		p.Send(gameOverMsg{code: code, err: err})
	}()

	final, err := p.Run()
	cancel()
	feed.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	if ui, ok := final.(ConsoleUI); ok && ui.finished {
		code := ui.exitCode
		if code == location.ExitCancelled {
			// Only the player leaving cancels the game.
			code = location.ExitQuit
		} else if ui.err != nil {
			fmt.Fprintf(os.Stderr, "Game stopped: %v\n", ui.err)
		}
		_ = journal.Close()
		os.Exit(code)
	}
}
