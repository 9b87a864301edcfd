// Package console runs a game directly on a tcell screen with a fixed-step
// ticker, without the Bubble Tea event loop.
package console

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Open creates and initializes the terminal screen. Callers must Fini it.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

// Run drives the game on screen until the game reports Quit or ctx is done.
// Each tick polls queued keys, steps the game and draws the presented frame.
// The screen size overrides cfg.ScreenW and cfg.ScreenH.
func Run(ctx context.Context, screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig) (core.GameState, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	cfg.ScreenW, cfg.ScreenH = screen.Size()
	game.Reset(cfg)

	buf := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	game.Render(buf)
	blit(screen, buf)

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(screen, done)

	queue := core.NewInputQueue()
	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return game.State(), ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a := actionFor(ev); a != core.ActionNone {
					queue.Push(a)
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				buf.Resize(w, h)
				game.Resize(w, h)
				game.Render(buf)
				screen.Sync()
				blit(screen, buf)
			}

		case <-ticker.C:
			result := game.Step(queue)
			if result.Quit {
				return result.State, nil
			}
			game.Render(buf)
			blit(screen, buf)
		}
	}
}

// pollEvents forwards screen events until done is closed or the screen is finalized.
func pollEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// blit copies the presented frame to the terminal screen.
func blit(screen tcell.Screen, buf *core.Screen) {
	for y := range buf.Height() {
		for x := range buf.Width() {
			g := buf.FrontCell(x, y)
			screen.SetContent(x, y, g.Rune, nil, styleFor(g))
		}
	}
	screen.Show()
}

func styleFor(g core.Glyph) tcell.Style {
	st := tcell.StyleDefault
	if g.Fg != core.ColorNone {
		st = st.Foreground(tcell.PaletteColor(int(g.Fg)))
	}
	if g.Bg != core.ColorNone {
		st = st.Background(tcell.PaletteColor(int(g.Bg)))
	}
	return st
}

// actionFor maps a key event to a game action.
func actionFor(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
	default:
		return core.ActionNone
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'w', 'k':
		return core.ActionUp
	case 's', 'j':
		return core.ActionDown
	case 'a', 'h':
		return core.ActionLeft
	case 'd', 'l':
		return core.ActionRight
	case 'p', ' ':
		return core.ActionPause
	case 'r':
		return core.ActionRestart
	case 'q':
		return core.ActionQuit
	}
	return core.ActionNone
}
