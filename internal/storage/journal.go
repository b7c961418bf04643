package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/jwebster45206/room-engine/pkg/storage"
)

// OpenJournal connects a RedisJournal, or returns a NopJournal when redisURL
// is empty or Redis cannot be reached. Journal problems never stop a game.
func OpenJournal(ctx context.Context, redisURL string, ttl time.Duration, logger *slog.Logger) storage.Journal {
	if redisURL == "" {
		return storage.NopJournal{}
	}

	j, err := NewRedisJournal(redisURL, ttl, logger)
	if err != nil {
		logger.Warn("Turn journal disabled", "error", err)
		return storage.NopJournal{}
	}

	if err := j.WaitForConnection(ctx, 5, time.Second); err != nil {
		logger.Warn("Turn journal disabled", "error", err)
		_ = j.Close()
		return storage.NopJournal{}
	}

	logger.Info("Turn journal enabled", "ttl", ttl)
	return j
}
