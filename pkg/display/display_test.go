package display

import (
	"strings"
	"testing"

	"github.com/jwebster45206/room-engine/pkg/state"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"test_room", "Test Room"},
		{"room_a", "Room A"},
		{"cellar", "Cellar"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Title(tt.id); got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	text := "You find yourself standing inside of a developer's test room."

	if got := Wrap(text, 0); got != text {
		t.Errorf("Wrap(text, 0) = %q, want text unchanged", got)
	}

	wrapped := Wrap(text, 20)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width 20", line)
		}
	}
	if got, want := strings.Join(strings.Fields(wrapped), " "), strings.Join(strings.Fields(text), " "); got != want {
		t.Errorf("wrapping changed the words: %q", got)
	}
}

func TestInventoryTable(t *testing.T) {
	inv := &state.Inventory{}
	inv.Add("Golden Key", "A quaint key with an irresistable luster.")
	inv.Add("Sword", "You could do some damage with this.")

	out := InventoryTable(inv)

	for _, want := range []string{"INVENTORY", "Golden Key", "Sword", "You could do some damage with this."} {
		if !strings.Contains(out, want) {
			t.Errorf("table is missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, header, separator, two rows, bottom border
	if len(lines) != 6 {
		t.Errorf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if strings.Index(out, "Golden Key") > strings.Index(out, "Sword") {
		t.Error("rows should keep inventory order")
	}
}

func TestInventoryTable_Empty(t *testing.T) {
	out := InventoryTable(&state.Inventory{})
	if !strings.Contains(out, "INVENTORY") {
		t.Errorf("expected a header, got:\n%s", out)
	}
	if strings.Contains(out, "Golden Key") {
		t.Errorf("expected no rows, got:\n%s", out)
	}
}
