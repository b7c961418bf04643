package intent

import "strings"

// singleTokens maps every exact single-token command to its intent kind.
// Only these literal spellings are recognized; there is no case folding.
var singleTokens = map[string]Kind{
	"n": KindNorth, "N": KindNorth, "north": KindNorth, "North": KindNorth,
	"s": KindSouth, "S": KindSouth, "south": KindSouth, "South": KindSouth,
	"e": KindEast, "E": KindEast, "east": KindEast, "East": KindEast,
	"w": KindWest, "W": KindWest, "west": KindWest, "West": KindWest,
	"u": KindUp, "U": KindUp, "up": KindUp, "Up": KindUp,
	"d": KindDown, "D": KindDown, "down": KindDown, "Down": KindDown,

	"i": KindInventory, "I": KindInventory, "inv": KindInventory,
	"q": KindQuit, "Q": KindQuit, "quit": KindQuit, "Quit": KindQuit,
}

var getVerbs = map[string]bool{"get": true, "take": true, "grab": true}

var usePrefixes = []string{"use ", "Use "}

const useOnDelimiter = " on "

// Parse converts one raw line of player input into an Intent. It never
// fails: anything outside the grammar becomes Other with the input's
// tokens rejoined by single spaces.
func Parse(line string) Intent {
	tokens := strings.Fields(line)

	if len(tokens) == 1 {
		if kind, ok := singleTokens[tokens[0]]; ok {
			return Intent{Kind: kind}
		}
	}

	if len(tokens) > 0 {
		verb, rest := tokens[0], tokens[1:]
		switch {
		case getVerbs[verb]:
			return Get(strings.Join(rest, " "))
		case verb == "look":
			return LookAt(strings.Join(trimLeading(rest, "at"), " "))
		case verb == "talk":
			return TalkTo(strings.Join(trimLeading(rest, "to"), " "))
		}
	}

	joined := strings.Join(tokens, " ")
	if in, ok := parseUse(joined); ok {
		return in
	}
	return Other(joined)
}

// parseUse handles "use A on B" before "use A" so that the two-object
// form is never swallowed by the single-object one. The last " on "
// splits target from object.
func parseUse(joined string) (Intent, bool) {
	for _, prefix := range usePrefixes {
		rest, ok := strings.CutPrefix(joined, prefix)
		if !ok {
			continue
		}
		if idx := strings.LastIndex(rest, useOnDelimiter); idx >= 0 {
			return UseOn(rest[:idx], rest[idx+len(useOnDelimiter):]), true
		}
		return Use(rest), true
	}
	return Intent{}, false
}

func trimLeading(tokens []string, word string) []string {
	if len(tokens) > 0 && tokens[0] == word {
		return tokens[1:]
	}
	return tokens
}
