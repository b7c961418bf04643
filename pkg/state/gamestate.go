package state

import (
	"time"

	"github.com/google/uuid"
)

// GameState is everything a location handler may read or mutate during a turn.
// It is owned by the dispatch loop and handed to exactly one handler at a time.
type GameState struct {
	ID        uuid.UUID `json:"id"`                 // Unique ID per session
	Location  string    `json:"location,omitempty"` // Current location identifier
	Inventory Inventory `json:"inventory"`
	Flags     Flags     `json:"flags"`
	Turn      int       `json:"turn"` // Number of handler invocations so far
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGameState(start string) *GameState {
	now := time.Now()
	return &GameState{
		ID:        uuid.New(),
		Location:  start,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
