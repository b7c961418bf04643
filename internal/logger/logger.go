package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/jwebster45206/room-engine/internal/config"
)

// Setup configures the global slog logger based on environment.
// Logs go to stderr; stdout is reserved for the game's narrative.
func Setup(cfg *config.Config) *slog.Logger {
	return SetupWriter(cfg, os.Stderr)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// WithGameState adds the game session ID to logger context
func WithGameState(logger *slog.Logger, gameStateID string) *slog.Logger {
	return logger.With("gamestate_id", gameStateID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
