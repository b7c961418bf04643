package location

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/jwebster45206/room-engine/pkg/display"
	"github.com/jwebster45206/room-engine/pkg/intent"
	"github.com/jwebster45206/room-engine/pkg/state"
)

// DefaultPrompt is printed before every read, with no trailing newline.
const DefaultPrompt = "> "

// Session gives the current handler exclusive access to the game state
// and to the player's terminal for the length of one turn.
type Session struct {
	State *state.GameState

	in     *bufio.Reader
	out    io.Writer
	prompt string
	width  int

	// input read during the current turn, for the journal
	lastLine   string
	lastIntent intent.Intent
	readCount  int
}

type SessionOpt func(*Session)

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) SessionOpt {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithWidth sets the narrative wrap width. Zero disables wrapping.
func WithWidth(width int) SessionOpt {
	return func(s *Session) {
		s.width = width
	}
}

func NewSession(gs *state.GameState, in io.Reader, out io.Writer, opts ...SessionOpt) *Session {
	s := &Session{
		State:  gs,
		in:     bufio.NewReader(in),
		out:    out,
		prompt: DefaultPrompt,
		width:  display.DefaultWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Inventory() *state.Inventory {
	return &s.State.Inventory
}

func (s *Session) Flags() *state.Flags {
	return &s.State.Flags
}

// ReadIntent prompts for and parses one line of input. A failed read is
// treated the same as an empty line.
func (s *Session) ReadIntent() intent.Intent {
	fmt.Fprint(s.out, s.prompt)

	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		line = ""
	}

	in := intent.Parse(line)
	s.lastLine = line
	s.lastIntent = in
	s.readCount++
	return in
}

// Say writes one wrapped line of narrative.
func (s *Session) Say(text string) {
	fmt.Fprintln(s.out, display.Wrap(text, s.width))
}

func (s *Session) Sayf(format string, args ...any) {
	s.Say(fmt.Sprintf(format, args...))
}

// SayIf writes text only when the flag's value equals val.
func (s *Session) SayIf(flag string, val bool, text string) {
	if s.State.Flags.IsSet(flag) == val {
		s.Say(text)
	}
}

// Heading writes the styled title of a location.
func (s *Session) Heading(locationID string) {
	fmt.Fprintln(s.out, display.RenderTitle(locationID))
}

// ShowInventory writes the inventory table.
func (s *Session) ShowInventory() {
	fmt.Fprintln(s.out, display.InventoryTable(&s.State.Inventory))
}

func (s *Session) beginTurn() {
	s.lastLine = ""
	s.lastIntent = intent.Intent{}
	s.readCount = 0
}
