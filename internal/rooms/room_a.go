package rooms

import (
	"strings"

	"github.com/jwebster45206/room-engine/pkg/intent"
	"github.com/jwebster45206/room-engine/pkg/location"
)

// chestRoom is Room A. With autoOpen set, entering while holding the key
// opens the chest; otherwise the player has to use the key on it.
type chestRoom struct {
	autoOpen bool
}

func (c chestRoom) Advance(s *location.Session) location.Result {
	s.Heading(RoomA)
	s.Say("You find yourself standing inside of Room A. Very clearly distinct from the last room. This one has a name!")
	if c.autoOpen && !s.Flags().IsSet(FlagOpenedChest) && s.Inventory().Has(ItemGoldenKey) {
		s.Say("A chest sits alone in a dark corner of the room. Your golden key fits its lock.")
		openChest(s)
	} else {
		s.SayIf(FlagOpenedChest, false, "A chest sits alone in a dark corner of the room.")
	}
	s.Say("To the south is the test room.")

	in := s.ReadIntent()
	switch in.Kind {
	case intent.KindSouth:
		return location.Continue(TestRoom)
	case intent.KindQuit:
		return location.Quit()
	case intent.KindInventory:
		s.ShowInventory()
	case intent.KindUse:
		if strings.Contains(in.Target, "key") {
			c.tryChest(s)
		}
	case intent.KindUseOn:
		if strings.Contains(in.Target, "key") && strings.Contains(in.Object, "chest") {
			c.tryChest(s)
		}
	case intent.KindOther:
		if strings.Contains(in.Target, "open") && strings.Contains(in.Target, "chest") {
			c.tryChest(s)
		}
	}
	return location.Continue(RoomA)
}

func (c chestRoom) tryChest(s *location.Session) {
	switch {
	case s.Flags().IsSet(FlagOpenedChest):
		s.Say("The chest is already open. Don't you remember the cool sword you got?")
	case c.autoOpen:
		s.Say("The chest is locked tight. Perhaps come back with a key?")
	default:
		openChest(s)
	}
}

// openChest consumes the golden key and hands over the sword.
func openChest(s *location.Session) {
	if s.Flags().IsSet(FlagOpenedChest) {
		s.Say("The chest is already open. Don't you remember the cool sword you got?")
		return
	}
	if !s.Inventory().Has(ItemGoldenKey) {
		s.Say("The chest is locked. Maybe there's a key somewhere?")
		return
	}
	s.Inventory().Remove(ItemGoldenKey)
	s.Flags().Set(FlagOpenedChest)
	s.Say("You opened the chest, and found a sword inside!")
	s.Inventory().AddOnce(ItemSword, swordDesc)
}
