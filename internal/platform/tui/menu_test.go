package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newTestMenu() MenuModel {
	return NewMenuModel(testRuntime(), lipgloss.NewRenderer(io.Discard))
}

func TestMenuListsVariants(t *testing.T) {
	m := newTestMenu()

	view := m.View()
	for _, title := range []string{"Snake", "Snake (Walls)"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu view missing %q", title)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected string
	}{
		{"first item", nil, "snake"},
		{"down", []tea.KeyMsg{{Type: tea.KeyDown}}, "snake_walls"},
		{"down clamps", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}}, "snake_walls"},
		{"up clamps", []tea.KeyMsg{{Type: tea.KeyUp}}, "snake"},
		{"down then up", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyUp}}, "snake"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = newTestMenu()
			for _, k := range tt.keys {
				model, _ = model.Update(k)
			}
			model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

			m := model.(MenuModel)
			if m.Selected() == nil {
				t.Fatal("expected a selection")
			}
			if got := m.Selected().GameID; got != tt.expected {
				t.Errorf("selected %q, expected %q", got, tt.expected)
			}
			if !isQuit(cmd) {
				t.Error("selecting should end the menu program")
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	model, cmd := newTestMenu().Update(runeKey('q'))
	m := model.(MenuModel)

	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("q should quit without a selection")
	}
	if !isQuit(cmd) {
		t.Error("q should end the menu program")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	model, _ := newTestMenu().Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := model.(MenuModel).Config()

	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config size = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
