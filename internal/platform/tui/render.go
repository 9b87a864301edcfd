package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// Painter converts Screen buffers to styled strings.
// Styles are cached per color pair; a Painter belongs to a single program.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewPainter creates a painter for the given lipgloss renderer.
// A nil renderer uses the default renderer (local stdout).
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

func (p *Painter) style(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if st, ok := p.styles[key]; ok {
		return st
	}
	st := p.renderer.NewStyle()
	if fg != core.ColorNone {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(int(fg))))
	}
	if bg != core.ColorNone {
		st = st.Background(lipgloss.Color(strconv.Itoa(int(bg))))
	}
	p.styles[key] = st
	return st
}

// Render converts the presented frame of a Screen to a styled string.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.FrontCell(x, y)

			run.Reset()
			for x < s.Width() {
				g := s.FrontCell(x, y)
				if g.Fg != start.Fg || g.Bg != start.Bg {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			if start.Fg == core.ColorNone && start.Bg == core.ColorNone {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
