// Package t2048 implements the 2048 puzzle game on top of the board engine.
// State is the immutable session snapshot; Game adapts it to the arcade's
// tick-driven registry.Game interface.
package t2048

import (
	"math/rand"

	"github.com/vovakirdan/arcade-2048/internal/core"
	"github.com/vovakirdan/arcade-2048/internal/games/t2048/board"
	"github.com/vovakirdan/arcade-2048/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "2048"

// Game implements the 2048 puzzle game.
type Game struct {
	rules Rules
	rng   *rand.Rand
	tick  uint64
	state State

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	showWin  bool // Win banner stays up until the next accepted move
}

// Package-level rules applied to games created by the registry.
var configuredRules = DefaultRules()

// SetRules sets the rules used by games created after the call.
func SetRules(r Rules) {
	configuredRules = r
}

// New creates a 2048 game using the configured rules.
func New() *Game {
	return &Game{rules: configuredRules}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.showWin = false
	g.state = Start(g.rng, g.rules)
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board (21 wide, 9 tall) + HUD and footer
	minW := 25
	minH := 14
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts to a new terminal size without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// inputDirection returns the first directional action in the frame.
func inputDirection(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.Up, true
	case in.Has(core.ActionDown):
		return board.Down, true
	case in.Has(core.ActionLeft):
		return board.Left, true
	case in.Has(core.ActionRight):
		return board.Right, true
	}
	return 0, false
}

// Step advances the game by one tick. At most one move is applied per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.state.Over {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform.
	if g.state.Over {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := inputDirection(in); ok {
		g.processMove(dir)
	}

	return core.StepResult{State: g.State()}
}

// processMove applies a move and replaces the snapshot when it was accepted.
func (g *Game) processMove(dir board.Direction) {
	next, ok := g.state.Apply(dir, g.rng)
	if !ok {
		return
	}
	g.showWin = next.Won && !g.state.Won
	g.state = next
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Over,
		Won:      g.state.Won,
		Paused:   g.paused || g.tooSmall,
		Moves:    g.state.Moves,
		MaxTile:  g.state.MaxTile(),
	}
}

// Snapshot returns the current immutable game snapshot.
func (g *Game) Snapshot() State {
	return g.state
}

// Tick returns the number of simulation ticks since the last reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// ShareText returns the share message for the current score.
func (g *Game) ShareText(url string) string {
	return g.state.ShareText(url)
}
