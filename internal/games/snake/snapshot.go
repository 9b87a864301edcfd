package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Topology     string // "torus" or "walls"
	Score        int
	Resets       int
	SnakeLen     int
	TargetLength int
	Head         core.Cell
	Dir          Direction
	Apple        core.Cell
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:         g.tick,
		Topology:     g.topology.String(),
		Score:        g.score,
		Resets:       g.resets,
		SnakeLen:     g.snake.Len(),
		TargetLength: g.snake.TargetLength(),
		Head:         g.snake.Head(),
		Dir:          g.snake.Direction(),
		Apple:        g.apple.Position(),
		State:        state,
	}
}
