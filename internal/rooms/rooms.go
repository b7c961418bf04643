// Package rooms holds the playable locations. Two variants of the same
// map exist; they differ only in how the chest in Room A is opened.
package rooms

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/room-engine/pkg/location"
)

// Location identifiers
const (
	TestRoom = "test_room"
	RoomA    = "room_a"

	StartLocation = TestRoom
)

// Room variants
const (
	// VariantLocked requires the player to use the key on the chest.
	VariantLocked = "locked"
	// VariantAuto opens the chest as soon as the player enters with the key.
	VariantAuto = "auto"
)

// Flags and items
const (
	FlagGotGoldenKey = "test_room_got_golden_key"
	FlagOpenedChest  = "room_a_opened_chest"

	ItemGoldenKey = "Golden Key"
	ItemSword     = "Sword"

	goldenKeyDesc = "A quaint key with an irresistable luster."
	swordDesc     = "You could do some damage with this."
)

var ErrUnknownVariant = errors.New("unknown room variant")

func Variants() []string {
	return []string{VariantLocked, VariantAuto}
}

// NewRegistry builds the location registry for the given variant.
func NewRegistry(variant string) (*location.Registry, error) {
	var roomA location.Handler
	switch variant {
	case VariantLocked:
		roomA = chestRoom{}
	case VariantAuto:
		roomA = chestRoom{autoOpen: true}
	default:
		return nil, fmt.Errorf("%q: %w", variant, ErrUnknownVariant)
	}

	r := location.NewRegistry()
	if err := r.Register(TestRoom, testRoom{}); err != nil {
		return nil, err
	}
	if err := r.Register(RoomA, roomA); err != nil {
		return nil, err
	}
	return r, nil
}
