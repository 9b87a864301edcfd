package tui

import (
	"io"
	"net"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestConnLimiter(t *testing.T) {
	l := newConnLimiter(2)

	if n, ok := l.acquire("1.2.3.4"); !ok || n != 1 {
		t.Fatalf("first acquire = (%d, %v), expected (1, true)", n, ok)
	}
	if n, ok := l.acquire("1.2.3.4"); !ok || n != 2 {
		t.Fatalf("second acquire = (%d, %v), expected (2, true)", n, ok)
	}
	if n, ok := l.acquire("1.2.3.4"); ok || n != 2 {
		t.Errorf("third acquire = (%d, %v), expected (2, false)", n, ok)
	}
	if _, ok := l.acquire("5.6.7.8"); !ok {
		t.Error("other IPs should not be limited")
	}

	if got := l.release("1.2.3.4"); got != 1 {
		t.Errorf("release = %d, expected 1", got)
	}
	if _, ok := l.acquire("1.2.3.4"); !ok {
		t.Error("acquire after release should succeed")
	}

	l.release("1.2.3.4")
	l.release("1.2.3.4")
	l.release("5.6.7.8")
	if len(l.counts) != 0 {
		t.Errorf("counts = %v, expected empty map", l.counts)
	}
}

func TestConnLimiterUnlimited(t *testing.T) {
	l := newConnLimiter(0)
	for i := range 10 {
		if _, ok := l.acquire("1.2.3.4"); !ok {
			t.Fatalf("acquire %d denied with limit disabled", i)
		}
	}
}

func TestConnLimiterConcurrent(t *testing.T) {
	l := newConnLimiter(5)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := l.acquire("10.0.0.1"); ok {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if granted != 5 {
		t.Errorf("granted %d slots, expected 5", granted)
	}
}

func TestRemoteIP(t *testing.T) {
	tcp := &net.TCPAddr{IP: net.ParseIP("192.168.1.10"), Port: 52000}
	if got := remoteIP(tcp); got != "192.168.1.10" {
		t.Errorf("remoteIP(tcp) = %q, expected %q", got, "192.168.1.10")
	}

	unix := &net.UnixAddr{Name: "/tmp/sock", Net: "unix"}
	if got := remoteIP(unix); got != "/tmp/sock" {
		t.Errorf("remoteIP(unix) = %q, expected %q", got, "/tmp/sock")
	}
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(testRuntime(), lipgloss.NewRenderer(io.Discard))

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}

	m, _ = updateSession(t, m, TickMsg{})
	if got := m.gameModel.Screen().Frames(); got != 2 {
		t.Errorf("frames = %d, expected 2", got)
	}

	m, cmd = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.gameModel != nil {
		t.Fatal("esc should return to the menu")
	}
	if isQuit(cmd) {
		t.Error("returning to the menu should not end the session")
	}

	// A tick already in flight lands on the menu and is dropped
	m, cmd = updateSession(t, m, TickMsg{})
	if cmd != nil || m.quitting {
		t.Error("stale tick should be ignored by the menu")
	}
}

func TestSessionSeed(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"configured", 42},
		{"unseeded", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testRuntime()
			cfg.Seed = tt.seed
			m := NewSessionModel(cfg, lipgloss.NewRenderer(io.Discard))

			m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if m.gameModel == nil {
				t.Fatal("enter should start the selected game")
			}
			got := m.gameModel.config.Seed
			if tt.seed != 0 && got != tt.seed {
				t.Errorf("seed = %d, expected %d", got, tt.seed)
			}
			if tt.seed == 0 && got == 0 {
				t.Error("unseeded session should get a time-based seed")
			}
		})
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := NewSessionModel(testRuntime(), lipgloss.NewRenderer(io.Discard))

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = updateSession(t, m, runeKey('q'))
	m, cmd := updateSession(t, m, TickMsg{})

	if !isQuit(cmd) {
		t.Error("quit in game should end the session")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(testRuntime(), lipgloss.NewRenderer(io.Discard))

	m, cmd := updateSession(t, m, runeKey('q'))
	if !m.quitting || !isQuit(cmd) {
		t.Error("q in the menu should end the session")
	}
}
