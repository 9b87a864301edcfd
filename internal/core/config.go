package core

// RuntimeConfig contains configuration passed to games at initialization.
// It is fixed at startup; games never mutate it.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second
	Seed     int64   // RNG seed for deterministic gameplay
	Board    Grid    // Board geometry
	Palette  Palette // Board colors
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
		Board:    NewGrid(32, 19, 2),
		Palette:  DefaultPalette(),
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Apples eaten in the current run
	Length   int  // Current snake length
	Resets   int  // Collisions since start
	Paused   bool // Whether the game is paused
	TooSmall bool // Whether the screen cannot fit the board
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State    GameState
	Quit     bool // A quit event was polled this tick
	Collided bool // The snake collided and was reset this tick
	Ate      bool // The snake reached the apple this tick
}
