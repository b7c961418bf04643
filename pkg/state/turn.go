package state

import (
	"time"

	"github.com/google/uuid"
)

// TurnRecord describes one completed turn for the session journal.
type TurnRecord struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	Turn        int       `json:"turn"`
	Location    string    `json:"location"`
	Input       string    `json:"input"`
	Intent      string    `json:"intent"`
	Next        string    `json:"next,omitempty"`
	Terminated  bool      `json:"terminated,omitempty"`
	ExitCode    int       `json:"exit_code,omitempty"`
	Inventory   []string  `json:"inventory,omitempty"`
	Flags       []string  `json:"flags,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// NewTurnRecord snapshots the inventory names and set flags of gs.
func NewTurnRecord(gs *GameState, location string) TurnRecord {
	return TurnRecord{
		GameStateID: gs.ID,
		Turn:        gs.Turn,
		Location:    location,
		Inventory:   gs.Inventory.Names(),
		Flags:       gs.Flags.Names(),
		RecordedAt:  time.Now(),
	}
}
