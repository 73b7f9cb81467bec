package core

// RuntimeConfig is what a shell hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns available to the game
	ScreenH  int   // Terminal rows available to the game
	TickRate int   // Simulation ticks per second
	Seed     int64 // Spawn RNG seed; shells replace 0 with the clock
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// WithSize returns a copy of c sized to the given terminal, ignoring
// non-positive dimensions.
func (c RuntimeConfig) WithSize(width, height int) RuntimeConfig {
	if width > 0 && height > 0 {
		c.ScreenW, c.ScreenH = width, height
	}
	return c
}

// GameState is the summary a game reports to its shell after every step.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool // Sticky once the win tile appeared
	Paused   bool
	Moves    int
	MaxTile  int
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
