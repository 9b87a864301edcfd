package core

import (
	"strings"
)

// Glyph is one terminal character with its colors.
type Glyph struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blank = Glyph{Rune: ' ', Fg: ColorNone, Bg: ColorNone}

// Renderer receives the board each tick.
// Clear repaints the board background, DrawCell paints one board cell and
// Present publishes the finished frame.
type Renderer interface {
	Clear(bg Color)
	DrawCell(c Cell, fill, border Color)
	Present()
}

// Screen is a 2D glyph buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
//
// Drawing goes to a back buffer; Present copies it to the front buffer,
// which is what the platform displays.
type Screen struct {
	width  int
	height int
	back   [][]Glyph
	front  [][]Glyph
	frames uint64

	// Board placement used by the Renderer methods.
	boardX    int
	boardY    int
	board     Grid
	hasBoard  bool
	cellLeft  rune
	cellRight rune
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:     width,
		height:    height,
		cellLeft:  '[',
		cellRight: ']',
	}
	s.back = allocate(width, height)
	s.front = allocate(width, height)
	s.ClearAll()
	return s
}

// allocate creates blank cell storage.
func allocate(width, height int) [][]Glyph {
	cells := make([][]Glyph, height)
	for y := range cells {
		cells[y] = make([]Glyph, width)
		for x := range cells[y] {
			cells[y][x] = blank
		}
	}
	return cells
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Frames returns how many frames have been presented.
func (s *Screen) Frames() uint64 {
	return s.frames
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldBack, oldFront := s.back, s.front
	copyW := Min(s.width, width)
	copyH := Min(s.height, height)

	s.width = width
	s.height = height
	s.back = allocate(width, height)
	s.front = allocate(width, height)

	// Copy old content
	for y := 0; y < copyH; y++ {
		copy(s.back[y][:copyW], oldBack[y][:copyW])
		copy(s.front[y][:copyW], oldFront[y][:copyW])
	}
}

// PlaceBoard sets where the board's top-left cell is drawn and its geometry.
func (s *Screen) PlaceBoard(x, y int, board Grid) {
	s.boardX = x
	s.boardY = y
	s.board = board
	s.hasBoard = true
}

// BoardOrigin returns the terminal position of the board's top-left cell.
func (s *Screen) BoardOrigin() (int, int) {
	return s.boardX, s.boardY
}

// ClearAll fills the entire back buffer with uncolored spaces.
func (s *Screen) ClearAll() {
	for y := range s.back {
		for x := range s.back[y] {
			s.back[y][x] = blank
		}
	}
}

// Clear repaints the board area with the background color.
// Without a placed board the whole screen is repainted.
func (s *Screen) Clear(bg Color) {
	fill := Glyph{Rune: ' ', Fg: ColorNone, Bg: bg}
	if !s.hasBoard {
		for y := range s.back {
			for x := range s.back[y] {
				s.back[y][x] = fill
			}
		}
		return
	}
	for y := 0; y < s.board.Height; y++ {
		for x := 0; x < s.board.Columns(); x++ {
			s.SetGlyph(s.boardX+x, s.boardY+y, fill)
		}
	}
}

// DrawCell paints one board cell: border-colored brackets on a fill-colored
// background. Cells wider than two columns get plain fill in between.
func (s *Screen) DrawCell(c Cell, fill, border Color) {
	w := Max(s.board.CellWidth, 1)
	x0 := s.boardX + c.X*w
	y := s.boardY + c.Y

	if w == 1 {
		s.SetGlyph(x0, y, Glyph{Rune: '█', Fg: fill, Bg: fill})
		return
	}
	for i := 0; i < w; i++ {
		g := Glyph{Rune: ' ', Fg: border, Bg: fill}
		switch i {
		case 0:
			g.Rune = s.cellLeft
		case w - 1:
			g.Rune = s.cellRight
		}
		s.SetGlyph(x0+i, y, g)
	}
}

// Present publishes the back buffer as the current frame.
func (s *Screen) Present() {
	for y := range s.back {
		copy(s.front[y], s.back[y])
	}
	s.frames++
}

// Set places an uncolored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetGlyph(x, y, Glyph{Rune: r, Fg: ColorNone, Bg: ColorNone})
}

// SetGlyph places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetGlyph(x, y int, g Glyph) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.back[y][x] = g
}

// Get returns the rune at the given position of the back buffer.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the glyph at the given position of the back buffer.
func (s *Screen) GetCell(x, y int) Glyph {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.back[y][x]
}

// FrontCell returns the glyph at the given position of the presented frame.
func (s *Screen) FrontCell(x, y int) Glyph {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.front[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorNone)
}

// DrawTextColor writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColor(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		s.SetGlyph(x+i, y, Glyph{Rune: r, Fg: fg, Bg: ColorNone})
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int) {
	right, bottom := x+w-1, y+h-1

	// Corners
	s.Set(x, y, '┌')
	s.Set(right, y, '┐')
	s.Set(x, bottom, '└')
	s.Set(right, bottom, '┘')

	// Horizontal edges
	for i := x + 1; i < right; i++ {
		s.Set(i, y, '─')
		s.Set(i, bottom, '─')
	}

	// Vertical edges
	for j := y + 1; j < bottom; j++ {
		s.Set(x, j, '│')
		s.Set(right, j, '│')
	}
}

// FillRect fills a rectangular area with uncolored spaces.
func (s *Screen) FillRect(x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			s.Set(i, j, ' ')
		}
	}
}

// String converts the back buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	return plain(s.back, s.width, s.height)
}

// PresentedString converts the last presented frame to plain text.
func (s *Screen) PresentedString() string {
	return plain(s.front, s.width, s.height)
}

func plain(cells [][]Glyph, width, height int) string {
	var sb strings.Builder
	sb.Grow(width*height + height) // Pre-allocate for efficiency

	for y := 0; y < height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < width; x++ {
			sb.WriteRune(cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row of the back buffer as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, g := range s.back[y] {
		sb.WriteRune(g.Rune)
	}
	return sb.String()
}
