package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// loadConfig loads the snake configuration and applies flag overrides.
func loadConfig() (config.SnakeConfig, config.Source, error) {
	cfg, source, err := config.LoadSnake(flagConfig, func(path string, err error) {
		logger.Warn("skipping config", "path", path, "err", err)
	})
	if err != nil {
		return cfg, source, err
	}
	logger.Debug("loaded config", "source", source)

	if flagFPS != 0 {
		cfg.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, source, fmt.Errorf("--fps: %w", err)
		}
	}
	return cfg, source, nil
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// runtimeConfig builds the config handed to a local game.
func runtimeConfig() (core.RuntimeConfig, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	w, h := terminalSize()
	return cfg.Runtime(w, h, flagSeed), nil
}
