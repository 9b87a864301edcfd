package snake

import (
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxSamples bounds the random tries before Relocate falls back to picking
// from the explicit free-cell list.
const maxSamples = 64

// Apple is the single piece of food on the board.
type Apple struct {
	grid core.Grid
	rng  *rand.Rand
	pos  core.Cell
}

// NewApple creates an apple placed on a random cell not in occupied.
func NewApple(grid core.Grid, rng *rand.Rand, occupied []core.Cell) *Apple {
	a := &Apple{
		grid: grid,
		rng:  rng,
		pos:  grid.Center(),
	}
	a.Relocate(occupied)
	return a
}

// Position returns the apple's cell.
func (a *Apple) Position() core.Cell {
	return a.pos
}

// Relocate moves the apple to a uniformly random cell outside occupied.
//
// It samples the whole board first and, if the board is crowded, picks from
// the remaining free cells instead, so it always terminates. When occupied
// covers every cell there is nowhere to go: the position is left unchanged
// and false is returned.
func (a *Apple) Relocate(occupied []core.Cell) bool {
	taken := make(map[core.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		if a.grid.Contains(c) {
			taken[c] = struct{}{}
		}
	}
	if len(taken) >= a.grid.Area() {
		return false
	}

	for range maxSamples {
		c := core.Cell{X: a.rng.Intn(a.grid.Width), Y: a.rng.Intn(a.grid.Height)}
		if _, ok := taken[c]; !ok {
			a.pos = c
			return true
		}
	}

	// Collect all empty cells
	free := make([]core.Cell, 0, a.grid.Area()-len(taken))
	for y := 0; y < a.grid.Height; y++ {
		for x := 0; x < a.grid.Width; x++ {
			c := core.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	a.pos = free[a.rng.Intn(len(free))]
	return true
}
