package rooms

import (
	"strings"

	"github.com/jwebster45206/room-engine/pkg/intent"
	"github.com/jwebster45206/room-engine/pkg/location"
)

// testRoom is the starting location. It holds the golden key.
type testRoom struct{}

func (testRoom) Advance(s *location.Session) location.Result {
	s.Heading(TestRoom)
	s.Say("You find yourself standing inside of a developer's test room.")
	s.SayIf(FlagGotGoldenKey, false, "The room is bare, except for a small golden key gleaming gently in the middle of the room.")
	s.Say("To the north is Room A.")

	in := s.ReadIntent()
	switch in.Kind {
	case intent.KindNorth:
		return location.Continue(RoomA)
	case intent.KindQuit:
		return location.Quit()
	case intent.KindInventory:
		s.ShowInventory()
	case intent.KindGet:
		takeKey(s, in.Target)
	case intent.KindTalk:
		s.Say("Nobody here but you.")
	}
	return location.Continue(TestRoom)
}

func takeKey(s *location.Session, target string) {
	if !strings.Contains(target, "key") {
		return
	}
	if s.Flags().IsSet(FlagGotGoldenKey) {
		s.Say("There is no key here anymore.")
		return
	}
	s.Flags().Set(FlagGotGoldenKey)
	s.Inventory().AddOnce(ItemGoldenKey, goldenKeyDesc)
	s.Say("You pick up the gold key.")
}
