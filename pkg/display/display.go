package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/room-engine/pkg/state"
)

const DefaultWidth = 80

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

var titleCaser = cases.Title(language.English)

// Title turns a location identifier such as "room_a" into "Room A".
func Title(locationID string) string {
	return titleCaser.String(strings.ReplaceAll(locationID, "_", " "))
}

// RenderTitle styles a location title for terminal output.
func RenderTitle(locationID string) string {
	return titleStyle.Render(Title(locationID))
}

// Wrap word-wraps narrative text. A width of zero or less leaves text unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// InventoryTable renders the inventory as a bordered two-column table:
// a header row, one row per item, and a closing border.
func InventoryTable(inv *state.Inventory) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("INVENTORY", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, item := range inv.Items {
		t.Row(item.Name, item.Description)
	}
	return t.String()
}
