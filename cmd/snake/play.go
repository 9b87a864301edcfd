package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the given board variant (default: snake).

Variants:
  snake        - Edges wrap around (torus)
  snake_walls  - Leaving the board resets the snake

Controls:
  Arrows/WASD  - Steer
  P/Space      - Pause
  R            - Restart
  Ctrl+S       - Save a text screenshot to ~/.tui-snake/screenshots
  Q/Ctrl+C     - Quit

Backends:
  bubbletea    - Default; help footer, screenshots, menu support
  tcell        - Plain fixed-step loop on a tcell screen

Examples:
  snake play
  snake play snake_walls
  snake play --backend tcell
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id := registry.DefaultID
		if len(args) == 1 {
			id = args[0]
		}
		return playVariant(id)
	},
}

// playVariant runs one local game and prints the run summary afterwards.
func playVariant(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", id)
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	var state core.GameState
	switch flagBackend {
	case "bubbletea":
		outcome, err := tui.Run(game, cfg, tui.WithScreenshotDir(tui.DefaultScreenshotDir()))
		if err != nil {
			return err
		}
		state = outcome.State
	case "tcell":
		state, err = runConsole(game, cfg)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown backend %q (known: bubbletea, tcell)", flagBackend)
	}

	fmt.Printf("Apples: %d  Length: %d  Resets: %d\n", state.Score, state.Length, state.Resets)
	return nil
}

// runConsole plays on a tcell screen until quit or SIGINT/SIGTERM.
func runConsole(game registry.Game, cfg core.RuntimeConfig) (core.GameState, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := console.Open()
	if err != nil {
		return core.GameState{}, err
	}
	defer screen.Fini()

	state, err := console.Run(ctx, screen, game, cfg)
	if errors.Is(err, context.Canceled) {
		return state, nil
	}
	return state, err
}
