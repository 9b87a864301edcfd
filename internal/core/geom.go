// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Cell addresses one square of the board by column and row.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy). The result is not normalized.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid describes the fixed board geometry.
type Grid struct {
	Width     int // Board width in cells
	Height    int // Board height in cells
	CellWidth int // Terminal columns used to draw one cell
}

// NewGrid creates a grid with the given dimensions and cell width.
func NewGrid(width, height, cellWidth int) Grid {
	return Grid{Width: width, Height: height, CellWidth: cellWidth}
}

// Valid reports whether the grid has at least one cell.
func (g Grid) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center returns the cell at the middle of the board.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Contains returns true if the cell lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap normalizes a cell onto the board, treating opposite edges as joined.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: Mod(c.X, g.Width), Y: Mod(c.Y, g.Height)}
}

// Columns returns the board width in terminal columns.
func (g Grid) Columns() int {
	return g.Width * Max(g.CellWidth, 1)
}

// Mod returns a modulo n in [0, n) for any sign of a.
func Mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
