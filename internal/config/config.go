// Package config provides YAML-based game configuration loading
// for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for the Snake game.
// It is read once at startup and never changes while a game runs.
type SnakeConfig struct {
	Board    BoardConfig `yaml:"board"`
	TickRate int         `yaml:"tick_rate"`
	Colors   ColorConfig `yaml:"colors"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	Width     int `yaml:"width"`      // Cells across
	Height    int `yaml:"height"`     // Cells down
	CellWidth int `yaml:"cell_width"` // Terminal columns per cell
}

// ColorConfig defines the ANSI 256-color indices used to draw the board.
type ColorConfig struct {
	Background int `yaml:"background"`
	Border     int `yaml:"border"`
	Snake      int `yaml:"snake"`
	Apple      int `yaml:"apple"`
}

// Validation errors.
var (
	ErrBoardSize = errors.New("board width and height must be positive")
	ErrCellWidth = errors.New("cell_width must be between 1 and 4")
	ErrTickRate  = errors.New("tick_rate must be between 1 and 120")
	ErrColor     = errors.New("colors must be ANSI 256 indices (0-255)")
)

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrBoardSize, c.Board.Width, c.Board.Height)
	}
	if c.Board.CellWidth < 1 || c.Board.CellWidth > 4 {
		return fmt.Errorf("%w: got %d", ErrCellWidth, c.Board.CellWidth)
	}
	if c.TickRate < 1 || c.TickRate > 120 {
		return fmt.Errorf("%w: got %d", ErrTickRate, c.TickRate)
	}
	for name, v := range map[string]int{
		"background": c.Colors.Background,
		"border":     c.Colors.Border,
		"snake":      c.Colors.Snake,
		"apple":      c.Colors.Apple,
	} {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: %s = %d", ErrColor, name, v)
		}
	}
	return nil
}

// Grid returns the board geometry.
func (c SnakeConfig) Grid() core.Grid {
	return core.NewGrid(c.Board.Width, c.Board.Height, c.Board.CellWidth)
}

// Palette returns the board colors.
func (c SnakeConfig) Palette() core.Palette {
	return core.Palette{
		Background: core.Color(c.Colors.Background),
		Border:     core.Color(c.Colors.Border),
		Snake:      core.Color(c.Colors.Snake),
		Apple:      core.Color(c.Colors.Apple),
	}
}

// Runtime builds the RuntimeConfig handed to games.
func (c SnakeConfig) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: c.TickRate,
		Seed:     seed,
		Board:    c.Grid(),
		Palette:  c.Palette(),
	}
}
