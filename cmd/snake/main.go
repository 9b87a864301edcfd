// snake is a terminal snake game on a wrap-around board.
//
// Usage:
//
//	snake                    - Play the default board
//	snake play [variant]     - Play a board variant (snake, snake_walls)
//	snake list               - List available variants
//	snake menu               - Pick a variant interactively
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Override the configured tick rate
//	--seed <value>   - Set RNG seed for reproducible apples
//	--config <path>  - Load configuration from a YAML file
//	--backend <name> - Terminal backend for play (bubbletea, tcell)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagBackend string
)

// logger writes CLI diagnostics to stderr before the TUI takes the screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "snake",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a terminal snake game",
	Long: `Snake is a terminal game: steer the snake, eat apples, grow,
and don't bite yourself. The board wraps around at the edges.

Available commands:
  play     - Play a board variant directly
  list     - Show all board variants
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play snake_walls
  snake --fps 10 --seed 42
  snake serve --ssh :2222`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return playVariant(registry.DefaultID)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "bubbletea", "Terminal backend for play: bubbletea or tcell")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
