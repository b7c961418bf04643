package intent

import "fmt"

// Kind identifies which variant of Intent a parsed line produced.
type Kind string

const (
	// Meta-commands
	KindQuit      Kind = "quit"
	KindInventory Kind = "inventory"

	// Actions
	KindLook  Kind = "look"
	KindGet   Kind = "get"
	KindUse   Kind = "use"
	KindUseOn Kind = "use_on"
	KindTalk  Kind = "talk"

	// Directions
	KindNorth Kind = "north"
	KindSouth Kind = "south"
	KindEast  Kind = "east"
	KindWest  Kind = "west"
	KindUp    Kind = "up"
	KindDown  Kind = "down"

	// KindOther is the fallback for anything the grammar does not recognize.
	KindOther Kind = "other"
)

// Intent is the structured result of parsing one line of player input.
// Target carries the verb's argument (or the raw text for KindOther);
// Object is only set for KindUseOn.
type Intent struct {
	Kind   Kind   `json:"kind"`
	Target string `json:"target,omitempty"`
	Object string `json:"object,omitempty"`
}

// Constructors for each variant.

func Quit() Intent          { return Intent{Kind: KindQuit} }
func ShowInventory() Intent { return Intent{Kind: KindInventory} }
func Move(dir Kind) Intent  { return Intent{Kind: dir} }

func LookAt(target string) Intent { return Intent{Kind: KindLook, Target: target} }
func Get(target string) Intent    { return Intent{Kind: KindGet, Target: target} }
func Use(target string) Intent    { return Intent{Kind: KindUse, Target: target} }
func TalkTo(target string) Intent { return Intent{Kind: KindTalk, Target: target} }
func Other(raw string) Intent     { return Intent{Kind: KindOther, Target: raw} }

func UseOn(target, object string) Intent {
	return Intent{Kind: KindUseOn, Target: target, Object: object}
}

// IsDirection reports whether the intent is one of the six movement intents.
func (i Intent) IsDirection() bool {
	switch i.Kind {
	case KindNorth, KindSouth, KindEast, KindWest, KindUp, KindDown:
		return true
	}
	return false
}

// String renders the intent for debugging and turn journals,
// e.g. "Get(golden key)" or "UseOn(key, chest)".
func (i Intent) String() string {
	switch i.Kind {
	case KindQuit:
		return "Quit"
	case KindInventory:
		return "Inv"
	case KindLook:
		return fmt.Sprintf("Look(%s)", i.Target)
	case KindGet:
		return fmt.Sprintf("Get(%s)", i.Target)
	case KindUse:
		return fmt.Sprintf("Use(%s)", i.Target)
	case KindUseOn:
		return fmt.Sprintf("UseOn(%s, %s)", i.Target, i.Object)
	case KindTalk:
		return fmt.Sprintf("Talk(%s)", i.Target)
	case KindNorth:
		return "North"
	case KindSouth:
		return "South"
	case KindEast:
		return "East"
	case KindWest:
		return "West"
	case KindUp:
		return "Up"
	case KindDown:
		return "Down"
	default:
		return fmt.Sprintf("Other(%s)", i.Target)
	}
}
