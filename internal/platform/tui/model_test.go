package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 20,
		Seed:     7,
		Board:    core.NewGrid(32, 24, 2),
		Palette:  core.DefaultPalette(),
	}
}

func newTestModel(opts ...GameOption) (GameModel, *snake.Game) {
	g := snake.New()
	opts = append([]GameOption{WithRenderer(lipgloss.NewRenderer(io.Discard))}, opts...)
	m := NewGameModel(g, testRuntime(), opts...)
	m.Init()
	return m, g
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel) (GameModel, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameModelInitPresentsFirstFrame(t *testing.T) {
	m, _ := newTestModel()

	if got := m.Screen().Frames(); got != 1 {
		t.Errorf("frames after Init = %d, expected 1", got)
	}
	if got := m.Screen().Height(); got != 30-footerHeight {
		t.Errorf("screen height = %d, expected %d", got, 30-footerHeight)
	}
}

func TestGameModelTickStepsThenRenders(t *testing.T) {
	m, g := newTestModel()
	before := g.Snapshot()

	m, cmd := tick(t, m)

	after := g.Snapshot()
	if after.Tick != before.Tick+1 {
		t.Errorf("tick = %d, expected %d", after.Tick, before.Tick+1)
	}
	if after.Head == before.Head {
		t.Error("snake should move on tick")
	}
	if got := m.Screen().Frames(); got != 2 {
		t.Errorf("frames = %d, expected 2", got)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestGameModelKeysApplyOnNextTick(t *testing.T) {
	m, g := newTestModel()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if cmd != nil {
		t.Error("key press should not return a command")
	}
	if g.Snapshot().Dir != snake.DirRight {
		t.Error("direction should not change before the tick")
	}

	tick(t, m)
	if got := g.Snapshot().Dir; got != snake.DirDown {
		t.Errorf("direction = %v, expected %v", got, snake.DirDown)
	}
}

func TestGameModelQuitThroughTick(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := update(t, m, runeKey('q'))
	if isQuit(cmd) {
		t.Error("quit should be handled by the game tick, not the key handler")
	}

	m, cmd = tick(t, m)
	if !isQuit(cmd) {
		t.Error("tick after q should quit the program")
	}
	if !m.IsQuitting() {
		t.Error("IsQuitting should be true")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestDefaultConfigFitsStandardTerminal(t *testing.T) {
	for _, id := range []string{"snake", "snake_walls"} {
		t.Run(id, func(t *testing.T) {
			g, err := registry.Create(id)
			if err != nil {
				t.Fatalf("Create(%q): %v", id, err)
			}
			cfg := config.DefaultSnakeConfig().Runtime(80, 24, 1)
			m := NewGameModel(g, cfg, WithRenderer(lipgloss.NewRenderer(io.Discard)))
			m.Init()

			for range 3 {
				m, _ = tick(t, m)
			}
			if g.State().TooSmall {
				t.Fatal("default board should fit an 80x24 terminal")
			}
			head := g.(*snake.Game).Snapshot().Head
			center := cfg.Board.Center()
			expected := core.Cell{X: center.X + 3, Y: center.Y}
			if head != expected {
				t.Errorf("head = %v, expected %v", head, expected)
			}
		})
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	m, g := newTestModel()
	for range 3 {
		m, _ = tick(t, m)
	}
	head := g.Snapshot().Head

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !g.State().TooSmall {
		t.Fatal("game should report too small after shrinking")
	}
	if !strings.Contains(m.Screen().PresentedString(), "too small") {
		t.Error("resize should redraw the too-small notice")
	}

	m, _ = tick(t, m)
	if g.Snapshot().Head != head {
		t.Error("snake should not move while the window is too small")
	}

	update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	state := g.State()
	if state.TooSmall {
		t.Error("game should resume after growing the window")
	}
	if state.Resets != 0 {
		t.Errorf("resets = %d, expected 0", state.Resets)
	}
	if g.Snapshot().Head != head {
		t.Error("resize should not reset the snake")
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m, _ := newTestModel()
	m, cmd := update(t, m, esc)
	if m.BackToMenu() || cmd != nil {
		t.Error("esc should be ignored without WithBackToMenu")
	}

	m, _ = newTestModel(WithBackToMenu())
	m, cmd = update(t, m, esc)
	if !m.BackToMenu() {
		t.Error("esc should request the menu")
	}
	if !isQuit(cmd) {
		t.Error("leaving for the menu should end the game program")
	}
}

func TestGameModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(WithScreenshotDir(dir))
	m, _ = tick(t, m)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, expected 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "snake_") {
		t.Errorf("screenshot name = %q, expected snake_ prefix", entries[0].Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != m.Screen().PresentedString() {
		t.Error("screenshot should contain the presented frame")
	}
	if !strings.Contains(m.View(), "saved ") {
		t.Error("footer should report the saved screenshot")
	}
}

func TestGameModelScreenshotDisabled(t *testing.T) {
	m, _ := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if !strings.Contains(m.View(), "disabled") {
		t.Error("footer should report that screenshots are disabled")
	}

	// Any other key clears the notice
	m, _ = update(t, m, runeKey('x'))
	if strings.Contains(m.View(), "disabled") {
		t.Error("notice should clear on the next key")
	}
}
