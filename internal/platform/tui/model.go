package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// footerHeight is the number of rows below the game reserved for help.
const footerHeight = 1

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithRenderer sets the lipgloss renderer used for colors.
// SSH sessions pass a renderer bound to the session's terminal.
func WithRenderer(r *lipgloss.Renderer) GameOption {
	return func(m *GameModel) {
		m.painter = NewPainter(r)
	}
}

// WithScreenshotDir sets where ctrl+s writes screenshots.
// An empty dir disables screenshots.
func WithScreenshotDir(dir string) GameOption {
	return func(m *GameModel) {
		m.shotDir = dir
	}
}

// WithBackToMenu lets esc/b leave the game for the menu.
func WithBackToMenu() GameOption {
	return func(m *GameModel) {
		m.allowBack = true
	}
}

// GameModel is the Bubble Tea model for running a game.
// Keys are queued and consumed by the game on the next tick.
type GameModel struct {
	game    registry.Game
	screen  *core.Screen
	painter *Painter
	config  core.RuntimeConfig
	input   *core.InputQueue
	keys    KeyMap
	help    help.Model
	state   core.GameState

	shotDir    string
	notice     string
	allowBack  bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config: cfg,
		input:  core.NewInputQueue(),
		keys:   DefaultKeyMap(),
		help:   h,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.painter == nil {
		m.painter = NewPainter(nil)
	}
	return m
}

// playHeight is the screen height left for the game once the footer is drawn.
func playHeight(h int) int {
	return core.Max(h-footerHeight, 0)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	m.game.Render(m.screen)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions and handles platform keys directly.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.notice = m.saveScreenshot()
		return m, nil
	case m.allowBack && key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, tea.Quit
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.input.Push(action)
	}
	return m, nil
}

// handleResize resizes the screen without resetting the run.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	h := playHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.game.Render(m.screen)
	return m, nil
}

// handleTick runs one game tick: step the simulation, then draw the frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.game.Render(m.screen)
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the presented frame as plain text and returns a status line.
func (m GameModel) saveScreenshot() string {
	if m.shotDir == "" {
		return "screenshots are disabled"
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.PresentedString()), 0o600); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}
	return "saved " + path
}

// View renders the presented frame and the footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer = m.notice
	}
	return m.painter.Render(m.screen) + "\n" + footer
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// Screen returns the screen the game draws into.
func (m GameModel) Screen() *core.Screen {
	return m.screen
}

// IsQuitting returns true if the game reported a quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// DefaultScreenshotDir returns ~/.tui-snake/screenshots, or empty if home is unavailable.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-snake", "screenshots")
}

// Outcome describes how a local game program ended.
type Outcome struct {
	State      core.GameState
	BackToMenu bool
}

// Run starts a Bubble Tea program for the game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...GameOption) (Outcome, error) {
	model := NewGameModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("run %s: %w", game.ID(), err)
	}

	gm, ok := final.(GameModel)
	if !ok {
		return Outcome{}, nil
	}
	return Outcome{State: gm.State(), BackToMenu: gm.BackToMenu()}, nil
}
