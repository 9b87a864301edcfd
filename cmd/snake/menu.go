package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Press Esc during a game to return to the menu.

Examples:
  snake menu
  snake menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config // keep any size changes
		if result.Quit {
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		outcome, err := tui.Run(game, cfg,
			tui.WithScreenshotDir(tui.DefaultScreenshotDir()),
			tui.WithBackToMenu(),
		)
		if err != nil {
			return err
		}
		if !outcome.BackToMenu {
			return nil
		}
	}
}
