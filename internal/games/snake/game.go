package snake

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// hudHeight is the number of status lines above the board.
const hudHeight = 2

// Game runs one snake and one apple on a fixed board.
// It owns both exclusively; nothing else mutates them.
type Game struct {
	topology Topology
	rng      *rand.Rand
	tick     uint64
	score    int // Apples eaten since the last reset
	resets   int // Collisions since the game started

	grid    core.Grid
	palette core.Palette
	snake   *Snake
	apple   *Apple

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a Snake game on a toroidal board.
func New() *Game {
	return &Game{topology: TopologyTorus}
}

// NewWalled creates a Snake game whose board edges are solid.
func NewWalled() *Game {
	return &Game{topology: TopologyWalls}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_walls", func() registry.Game {
		return NewWalled()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.topology == TopologyWalls {
		return "snake_walls"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.topology == TopologyWalls {
		return "Snake (Walls)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(uint64(cfg.Seed)))
	g.tick = 0
	g.score = 0
	g.resets = 0
	g.paused = false

	g.grid = cfg.Board
	if !g.grid.Valid() {
		g.grid = core.DefaultConfig().Board
	}
	g.palette = cfg.Palette

	g.snake = NewSnake(g.grid, g.topology)
	g.apple = NewApple(g.grid, g.rng, g.snake.Body())

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records new screen dimensions. The run continues; the game only
// pauses itself while the board does not fit.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	requiredW, requiredH := g.requiredSize()
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// requiredSize returns the screen size needed to show HUD and board.
func (g *Game) requiredSize() (int, int) {
	w := g.grid.Columns()
	h := g.grid.Height + hudHeight
	if g.topology == TopologyWalls {
		w += 2
		h += 2
	}
	return w, h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputSource) core.StepResult {
	g.tick++

	var result core.StepResult
	restart := false
	for _, a := range in.Poll() {
		switch a {
		case core.ActionQuit:
			result.Quit = true
		case core.ActionPause:
			g.paused = !g.paused
		case core.ActionRestart:
			restart = true
		default:
			if d, ok := directionFor(a); ok {
				g.snake.SetPendingDirection(d)
			}
		}
	}

	if result.Quit {
		result.State = g.State()
		return result
	}

	if restart {
		g.restart()
	}

	// Don't simulate while paused or when the board is not visible
	if g.paused || g.tooSmall {
		result.State = g.State()
		return result
	}

	if g.snake.Step() {
		g.snake.Reset()
		g.resets++
		g.score = 0
		result.Collided = true
	}

	if g.snake.Head() == g.apple.Position() {
		g.snake.Grow()
		g.apple.Relocate(g.snake.Body())
		g.score++
		result.Ate = true
	}

	result.State = g.State()
	return result
}

// restart begins a fresh run without counting it as a collision.
func (g *Game) restart() {
	g.snake.Reset()
	g.apple.Relocate(g.snake.Body())
	g.score = 0
	g.paused = false
}

// Render draws the game to the screen and presents the frame.
func (g *Game) Render(dst *core.Screen) {
	dst.ClearAll()

	// Draw HUD
	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.requiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d, resize to continue", w, h))
		dst.Present()
		return
	}

	// Center the board below the HUD
	x := (dst.Width() - g.grid.Columns()) / 2
	y := hudHeight
	if g.topology == TopologyWalls {
		y++
		dst.DrawBox(x-1, y-1, g.grid.Columns()+2, g.grid.Height+2)
	}
	dst.PlaceBoard(x, y, g.grid)

	g.Draw(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}

	dst.Present()
}

// Draw hands the board to a renderer: background first, then the apple,
// then the snake body with the head drawn last.
func (g *Game) Draw(r core.Renderer) {
	r.Clear(g.palette.Background)
	r.DrawCell(g.apple.Position(), g.palette.Apple, g.palette.Border)

	body := g.snake.body
	for i := len(body) - 1; i >= 0; i-- {
		r.DrawCell(body[i], g.palette.Snake, g.palette.Border)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Apples: %d  Length: %d  Resets: %d", g.Title(), g.score, g.snake.Len(), g.resets)
	dst.DrawText(0, 0, hud)

	// Draw separator
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	// Keep the box on screen even when the window is narrower than it
	boxX := core.Clamp((dst.Width()-boxW)/2, 0, dst.Width())
	boxY := core.Clamp((dst.Height()-boxH)/2, 0, dst.Height())

	dst.FillRect(boxX, boxY, boxW, boxH)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Length:   g.snake.Len(),
		Resets:   g.resets,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
}
