package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/room-engine/pkg/state"
	"github.com/jwebster45206/room-engine/pkg/storage"
)

func setupTestJournal(t *testing.T, redisURL func(*miniredis.Miniredis) string) (*RedisJournal, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	j, err := NewRedisJournal(redisURL(mr), time.Hour, logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create journal: %v", err)
	}

	t.Cleanup(func() {
		_ = j.Close()
		mr.Close()
	})
	return j, mr
}

func bareAddr(mr *miniredis.Miniredis) string { return mr.Addr() }
func urlAddr(mr *miniredis.Miniredis) string { return "redis://" + mr.Addr() }

func TestRedisJournal_RecordAndEntries(t *testing.T) {
	for name, addr := range map[string]func(*miniredis.Miniredis) string{"addr": bareAddr, "url": urlAddr} {
		t.Run(name, func(t *testing.T) {
			j, mr := setupTestJournal(t, addr)
			ctx := context.Background()
			require.NoError(t, j.Ping(ctx))

			id := uuid.New()
			turns := []state.TurnRecord{
				{GameStateID: id, Turn: 1, Location: "test_room", Input: "get key", Intent: "Get(key)", Next: "test_room", Inventory: []string{"Golden Key"}},
				{GameStateID: id, Turn: 2, Location: "test_room", Input: "n", Intent: "North", Next: "room_a"},
				{GameStateID: id, Turn: 3, Location: "room_a", Input: "q", Intent: "Quit", Terminated: true},
			}
			for _, rec := range turns {
				require.NoError(t, j.Record(ctx, rec))
			}

			got, err := j.Entries(ctx, id)
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, "Get(key)", got[0].Intent)
			assert.Equal(t, []string{"Golden Key"}, got[0].Inventory)
			assert.Equal(t, "room_a", got[1].Next)
			assert.True(t, got[2].Terminated)

			ttl := mr.TTL(journalKey(id))
			assert.Equal(t, time.Hour, ttl)

			other, err := j.Entries(ctx, uuid.New())
			require.NoError(t, err)
			assert.Empty(t, other)
		})
	}
}

func TestRedisJournal_Expires(t *testing.T) {
	j, mr := setupTestJournal(t, urlAddr)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, j.Record(ctx, state.TurnRecord{GameStateID: id, Turn: 1}))
	mr.FastForward(2 * time.Hour)

	got, err := j.Entries(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisJournal_SkipsMalformedEntries(t *testing.T) {
	j, mr := setupTestJournal(t, urlAddr)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, j.Record(ctx, state.TurnRecord{GameStateID: id, Turn: 1}))
	_, err := mr.Push(journalKey(id), "not json")
	require.NoError(t, err)
	require.NoError(t, j.Record(ctx, state.TurnRecord{GameStateID: id, Turn: 2}))

	got, err := j.Entries(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[1].Turn)
}

func TestRedisJournal_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	j, err := NewRedisJournal(addr, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer j.Close()
	assert.Equal(t, DefaultJournalTTL, j.ttl)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, j.Ping(ctx))
	assert.Error(t, j.Record(ctx, state.TurnRecord{GameStateID: uuid.New()}))
	assert.Error(t, j.WaitForConnection(ctx, 2, 10*time.Millisecond))
}

func TestNewRedisJournal_BadURL(t *testing.T) {
	_, err := NewRedisJournal("redis://localhost:6379/notanumber", 0, slog.Default())
	assert.Error(t, err)
}

func TestOpenJournal(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, isNop := OpenJournal(ctx, "", time.Hour, logger).(storage.NopJournal)
	assert.True(t, isNop, "empty URL disables the journal")

	_, isNop = OpenJournal(ctx, "redis://localhost:6379/notanumber", time.Hour, logger).(storage.NopJournal)
	assert.True(t, isNop, "bad URL disables the journal")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	j := OpenJournal(ctx, mr.Addr(), time.Hour, logger)
	defer j.Close()
	_, isRedis := j.(*RedisJournal)
	assert.True(t, isRedis)
}
