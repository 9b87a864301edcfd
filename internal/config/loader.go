package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// SkipFunc is told about a config file that exists but was passed over.
type SkipFunc func(path string, err error)

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.tui-snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when they are missing or broken. Broken files
// are reported to onSkip, which may be nil.
func LoadSnake(customPath string, onSkip SkipFunc) (SnakeConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	candidates := []struct {
		path   string
		source Source
	}{
		{userConfigPath("snake.yaml"), SourceUser},
		{filepath.Join("configs", "snake.yaml"), SourceLocal},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		cfg, err := loadFile(c.path)
		if err == nil {
			return cfg, c.source, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && onSkip != nil {
			onSkip(c.path, err)
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultSnakeYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultSnakeConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
}

// loadFile reads and parses one config file.
func loadFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, err
	}
	return Parse(data)
}

// Parse decodes YAML over the built-in defaults and validates the result.
// Unknown keys are rejected so typos do not go unnoticed.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SnakeConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-snake", "configs", filename)
}
