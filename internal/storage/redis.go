package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/room-engine/pkg/state"
	"github.com/jwebster45206/room-engine/pkg/storage"
)

const DefaultJournalTTL = 24 * time.Hour

// RedisJournal implements storage.Journal with one Redis list per game session.
type RedisJournal struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisJournal implements Journal interface
var _ storage.Journal = (*RedisJournal)(nil)

// NewRedisJournal creates a journal for redisURL, which may be a redis:// URL
// or a bare host:port address. A ttl of zero uses DefaultJournalTTL.
func NewRedisJournal(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisJournal, error) {
	opt := &redis.Options{Addr: redisURL}
	if strings.Contains(redisURL, "://") {
		var err error
		opt, err = redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis URL: %w", err)
		}
	}

	if ttl <= 0 {
		ttl = DefaultJournalTTL
	}

	return &RedisJournal{
		client: redis.NewClient(opt),
		logger: logger,
		ttl:    ttl,
	}, nil
}

// Health and lifecycle methods

func (r *RedisJournal) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisJournal) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Debug("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisJournal) WaitForConnection(ctx context.Context, maxRetries int, retryDelay time.Duration) error {
	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Debug("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Journal operations

func journalKey(id uuid.UUID) string {
	return "journal:" + id.String()
}

func (r *RedisJournal) Record(ctx context.Context, rec state.TurnRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal turn record: %w", err)
	}

	key := journalKey(rec.GameStateID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to record turn", "gamestate_id", rec.GameStateID, "turn", rec.Turn, "error", err)
		return fmt.Errorf("failed to record turn: %w", err)
	}
	return nil
}

func (r *RedisJournal) Entries(ctx context.Context, gameStateID uuid.UUID) ([]state.TurnRecord, error) {
	vals, err := r.client.LRange(ctx, journalKey(gameStateID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}

	recs := make([]state.TurnRecord, 0, len(vals))
	for i, v := range vals {
		var rec state.TurnRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			r.logger.Warn("Skipping malformed journal entry", "gamestate_id", gameStateID, "index", i, "error", err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
