package tui

import (
	"os"
	"os/user"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-2048/internal/core"
	"github.com/vovakirdan/arcade-2048/internal/registry"
)

// sessionView is the screen currently shown by a session.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full arcade session flow: menu -> game or scores -> menu.
// This is the top-level model used for SSH sessions and the local menu command.
type SessionModel struct {
	deps       Deps
	config     core.RuntimeConfig
	gameID     string
	username   string
	sessionID  string
	view       sessionView
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  *GameModel
	quitting   bool
}

// NewSessionModel creates a new session model for the given game.
func NewSessionModel(deps Deps, gameID string, cfg core.RuntimeConfig, username string) SessionModel {
	id := uuid.NewString()
	deps.Logger = deps.logger().With("session", id)

	return SessionModel{
		deps:      deps,
		config:    cfg,
		gameID:    gameID,
		username:  username,
		sessionID: id,
		menu:      NewMenuModel(deps.Store, gameID, cfg),
	}
}

// SessionID returns the unique id of the session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.scoreboard = NewScoreboardModel(m.deps.Store, m.gameID, m.gameTitle(), m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scoreboard.Init()

	case ChoicePlay:
		game, err := registry.Create(m.gameID)
		if err != nil {
			m.deps.logger().Error("could not create game", "game", m.gameID, "error", err)
			m.menu = NewMenuModel(m.deps.Store, m.gameID, m.config)
			return m, nil
		}

		m.config.Seed = time.Now().UnixNano()
		gameModel := NewGameModel(game, m.deps, m.config)
		m.gameModel = &gameModel
		m.view = viewGame
		m.deps.logger().Info("game started", "user", m.username, "game", m.gameID)

		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.logGameEnd()
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.logGameEnd()
		m.gameModel = nil
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu rebuilds the menu so the best score is fresh.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.deps.Store, m.gameID, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) logGameEnd() {
	state := m.gameModel.GameState()
	m.deps.logger().Info("game ended",
		"user", m.username,
		"score", state.Score,
		"moves", state.Moves,
		"max_tile", state.MaxTile,
		"over", state.GameOver,
	)
}

func (m SessionModel) gameTitle() string {
	for _, g := range registry.List() {
		if g.ID == m.gameID {
			return g.Title
		}
	}
	return m.gameID
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case viewScores:
		return m.scoreboard.View()
	}

	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(deps Deps, gameID string, cfg core.RuntimeConfig) error {
	if deps.Clipboard == nil {
		deps.Clipboard = os.Stderr
	}

	p := tea.NewProgram(
		NewSessionModel(deps, gameID, cfg, localUser()),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// localUser returns the name of the local user for log lines.
func localUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "local"
}
