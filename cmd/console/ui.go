package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwebster45206/room-engine/pkg/display"
	"github.com/jwebster45206/room-engine/pkg/state"
)

const PlaceHolderText = "What do you do?"

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	feed         *lineFeed
	gameViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	transcript   string
	lastTurn     *state.TurnRecord
	ready        bool
	width        int
	height       int

	finished bool
	exitCode int
	err      error
}

// outputMsg carries narrative text written by the game.
type outputMsg string

// turnMsg is sent after every completed turn.
type turnMsg struct {
	rec state.TurnRecord
}

// gameOverMsg is sent when the dispatcher stops.
type gameOverMsg struct {
	code int
	err  error
}

var (
	gamePanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(feed *lineFeed) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	gameVp := viewport.New(50, 20)
	gameVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		feed:         feed,
		textarea:     ta,
		gameViewport: gameVp,
		metaViewport: metaVp,
	}
}

func writeMetadata(rec *state.TurnRecord) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("GAME STATE") + "\n\n")

	if rec == nil {
		content.WriteString("No turns yet\n")
		return content.String()
	}

	content.WriteString("Game ID:\n")
	content.WriteString(rec.GameStateID.String()[:8] + "...\n\n")

	content.WriteString("Location:\n")
	where := rec.Next
	if rec.Terminated {
		where = rec.Location
	}
	content.WriteString(display.Title(where) + "\n\n")

	content.WriteString("Turn:\n")
	content.WriteString(fmt.Sprintf("%d\n\n", rec.Turn))

	content.WriteString("Inventory:\n")
	if len(rec.Inventory) == 0 {
		content.WriteString("Empty\n")
	}
	for _, name := range rec.Inventory {
		content.WriteString(fmt.Sprintf("• %s\n", name))
	}

	content.WriteString("\nFlags:\n")
	if len(rec.Flags) == 0 {
		content.WriteString("None set\n")
	}
	for _, name := range rec.Flags {
		content.WriteString(fmt.Sprintf("• %s\n", name))
	}
	return content.String()
}

func (m *ConsoleUI) appendTranscript(text string) {
	m.transcript += text
	m.gameViewport.SetContent(m.transcript)
	m.gameViewport.GotoBottom()
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		gameWidth := int(float64(m.width)*0.72) - 4
		metaWidth := m.width - gameWidth - 6

		m.gameViewport.Width = gameWidth - 2
		m.gameViewport.Height = m.height - 5
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 2
		m.textarea.SetWidth(gameWidth - 4)

		m.gameViewport.SetContent(m.transcript)
		m.gameViewport.GotoBottom()
		m.metaViewport.SetContent(writeMetadata(m.lastTurn))
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.feed.Close()
			return m, tea.Quit
		case tea.KeyEnter:
			if m.finished {
				return m, tea.Quit
			}

			line := m.textarea.Value()
			m.textarea.Reset()
			m.appendTranscript(userStyle.Render("> "+line) + "\n")
			if !m.feed.Send(line) {
				m.appendTranscript(errorStyle.Render("(still thinking about the last command)") + "\n")
			}
			return m, nil
		}

	case outputMsg:
		m.appendTranscript(string(msg))
		return m, nil

	case turnMsg:
		rec := msg.rec
		m.lastTurn = &rec
		m.metaViewport.SetContent(writeMetadata(m.lastTurn))
		return m, nil

	case gameOverMsg:
		m.finished = true
		m.exitCode = msg.code
		m.err = msg.err
		m.feed.Close()
		if msg.err != nil {
			m.appendTranscript(errorStyle.Render("Game stopped: "+msg.err.Error()) + "\n")
		}
		m.appendTranscript(titleStyle.Render("Game over. Press Enter to exit.") + "\n")
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.gameViewport, vpCmd = m.gameViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	separator := separatorStyle.Render(strings.Repeat("─", max(m.gameViewport.Width, 1)))
	left := lipgloss.JoinVertical(lipgloss.Left,
		gamePanelStyle.Render(m.gameViewport.View()),
		separator,
		m.textarea.View(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, metaPanelStyle.Render(m.metaViewport.View()))
}
