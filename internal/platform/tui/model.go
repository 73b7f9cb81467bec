package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-2048/internal/core"
	"github.com/vovakirdan/arcade-2048/internal/registry"
	"github.com/vovakirdan/arcade-2048/internal/storage"
)

// Deps holds the services shared by the models of one session.
type Deps struct {
	Store     *storage.Store // Optional; scores are not saved when nil
	Logger    *log.Logger
	ShareURL  string
	Clipboard io.Writer // OSC52 target for the share action; nil disables copying
}

func (d Deps) logger() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.Default()
}

// shareMsg reports the outcome of a share action.
type shareMsg struct {
	text string
	err  error
}

// GameModel is the Bubble Tea model for running a single arcade game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	status     string // One-line message drawn under the game
	standalone bool   // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case shareMsg:
		if msg.err != nil {
			m.deps.logger().Warn("could not copy share text", "error", msg.err)
			m.status = msg.text
		} else {
			m.status = "Copied: " + msg.text
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// B or Esc leave the game once it is over or paused
	if m.keyMapper.IsBack(msg) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone, core.ActionBack:
		return m, nil
	case core.ActionShare:
		if m.gameState.GameOver {
			return m, m.share()
		}
		return m, nil
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

// share returns a command copying the share text to the clipboard via OSC52.
func (m GameModel) share() tea.Cmd {
	sharer, ok := m.game.(registry.Sharer)
	if !ok {
		return nil
	}
	text := sharer.ShareText(m.deps.ShareURL)
	w := m.deps.Clipboard

	return func() tea.Msg {
		if w == nil {
			return shareMsg{text: text}
		}
		_, err := osc52.New(text).WriteTo(w)
		return shareMsg{text: text, err: err}
	}
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		m.gameState = m.game.State()
		return m, nil
	}

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.status = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished game. Failures are logged and play continues.
func (m GameModel) saveScore() {
	if m.deps.Store == nil || m.gameState.Score <= 0 {
		return
	}

	_, err := m.deps.Store.SaveScore(storage.Result{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		MaxTile: m.gameState.MaxTile,
		Moves:   m.gameState.Moves,
		Won:     m.gameState.Won,
	})
	if err != nil {
		m.deps.logger().Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.logger().Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.status = "Screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.status)
	}
	return RenderScreen(m.screen)
}

// GameState returns the state observed on the last tick.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a single game in its own Bubble Tea program.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	if deps.Clipboard == nil {
		deps.Clipboard = os.Stderr
	}

	model := NewGameModel(game, deps, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
