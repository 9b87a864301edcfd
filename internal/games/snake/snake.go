package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Topology decides what happens at the board edge.
type Topology int

const (
	// TopologyTorus joins opposite edges: leaving one side re-enters the other.
	TopologyTorus Topology = iota
	// TopologyWalls treats the edge as solid; leaving the board is a collision.
	TopologyWalls
)

func (t Topology) String() string {
	if t == TopologyWalls {
		return "walls"
	}
	return "torus"
}

// Snake is the player's body on the board. Head is at index 0.
//
// The body never holds more than targetLength cells. It only gets longer
// through Grow and only shrinks back to one cell through Reset.
type Snake struct {
	grid     core.Grid
	topology Topology

	body         []core.Cell
	direction    Direction
	pending      Direction // DirNone when no change is queued
	targetLength int
}

// NewSnake creates a snake of length 1 at the board center heading right.
func NewSnake(grid core.Grid, topology Topology) *Snake {
	s := &Snake{
		grid:     grid,
		topology: topology,
	}
	s.Reset()
	return s
}

// Reset puts the snake back to its starting state.
func (s *Snake) Reset() {
	s.body = append(s.body[:0], s.grid.Center())
	s.direction = DirRight
	s.pending = DirNone
	s.targetLength = 1
}

// SetPendingDirection queues a heading for the next Step.
// Reversing onto the current heading is ignored and reported as false.
func (s *Snake) SetPendingDirection(d Direction) bool {
	if d == DirNone || d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Step advances the snake by one cell and reports whether it collided.
// A collision leaves the snake as it is; the caller is expected to Reset it.
func (s *Snake) Step() bool {
	// Apply buffered direction
	if s.pending != DirNone {
		s.direction = s.pending
		s.pending = DirNone
	}

	dx, dy := s.direction.Delta()
	next := s.Head().Add(dx, dy)
	if s.topology == TopologyWalls {
		if !s.grid.Contains(next) {
			return true
		}
	} else {
		next = s.grid.Wrap(next)
	}

	// Insert new head at the front
	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = next

	// Drop tail cells beyond the target length
	if len(s.body) > s.targetLength {
		s.body = s.body[:s.targetLength]
	}

	for _, seg := range s.body[1:] {
		if seg == next {
			return true
		}
	}
	return false
}

// Grow lengthens the snake by one cell. A single-cell snake has no tail to
// keep, so the head is duplicated and the snake is two cells long right away.
func (s *Snake) Grow() {
	if len(s.body) == 1 {
		s.body = append(s.body, s.body[0])
	}
	s.targetLength++
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// TargetLength returns the length the snake is growing toward.
func (s *Snake) TargetLength() int {
	return s.targetLength
}

// Direction returns the heading applied on the last Step.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Pending returns the queued heading, or DirNone.
func (s *Snake) Pending() Direction {
	return s.pending
}

// Occupies reports whether any body cell is at c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}
