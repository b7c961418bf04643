package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pixil98/go-errors"

	"github.com/jwebster45206/room-engine/internal/rooms"
)

const MinTextWidth = 20

type Config struct {
	Environment   string
	LogLevel      slog.Level
	StartLocation string
	RoomVariant   string
	TextWidth     int

	// Journal settings. An empty RedisURL disables the turn journal.
	RedisURL   string
	JournalTTL time.Duration
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	el := errors.NewErrorList()

	// Unparseable values fall back to their defaults so Validate only
	// reports problems of its own.
	width, err := strconv.Atoi(getEnv("TEXT_WIDTH", "80"))
	if err != nil {
		el.Add(fmt.Errorf("parsing TEXT_WIDTH: %w", err))
		width = 80
	}

	ttl, err := time.ParseDuration(getEnv("JOURNAL_TTL", "24h"))
	if err != nil {
		el.Add(fmt.Errorf("parsing JOURNAL_TTL: %w", err))
		ttl = 24 * time.Hour
	}

	cfg := &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		StartLocation: getEnv("START_LOCATION", rooms.StartLocation),
		RoomVariant:   getEnv("ROOM_VARIANT", rooms.VariantLocked),
		TextWidth:     width,
		RedisURL:      getEnv("REDIS_URL", ""),
		JournalTTL:    ttl,
	}

	cfg.validate(el)
	if err := el.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	el := errors.NewErrorList()
	c.validate(el)
	return el.Err()
}

func (c *Config) validate(el interface{ Add(error) }) {
	if c.StartLocation == "" {
		el.Add(fmt.Errorf("start location is required"))
	}
	if !slices.Contains(rooms.Variants(), c.RoomVariant) {
		el.Add(fmt.Errorf("room variant %q must be one of %v", c.RoomVariant, rooms.Variants()))
	}
	if c.TextWidth < MinTextWidth {
		el.Add(fmt.Errorf("text width must be at least %d", MinTextWidth))
	}
	if c.RedisURL != "" && c.JournalTTL <= 0 {
		el.Add(fmt.Errorf("journal ttl must be positive"))
	}
}

// JournalEnabled reports whether turns should be written to Redis.
func (c *Config) JournalEnabled() bool {
	return c.RedisURL != ""
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
