package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-2048/internal/core"
	"github.com/vovakirdan/arcade-2048/internal/storage"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

// DefaultMenuItems returns the main menu entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Play", Choice: ChoicePlay},
		{Label: "High Scores", Choice: ChoiceScores},
		{Label: "Quit", Choice: ChoiceQuit},
	}
}

// MenuModel is the Bubble Tea model for the main menu.
// It never quits the program on selection; the session reads Chosen().
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	best      int // Best recorded score, 0 when unknown
	gameID    string
	keyMapper *KeyMapper
	chosen    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:     DefaultMenuItems(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		gameID:    gameID,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.best = best
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.chosen = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.chosen = m.items[m.cursor].Choice
		}

	case MenuActionScoreboard:
		m.chosen = ChoiceScores
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")

	if m.best > 0 {
		best := fmt.Sprintf("Best score: %d", m.best)
		b.WriteString(centerText(dimStyle.Render(best), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		line := "  " + item.Label
		if i == m.cursor {
			line = activeStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the selected entry, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// Cursor returns the highlighted item index.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// centerText centers text within given width.
// Width is measured in terminal cells so styled text centers correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
