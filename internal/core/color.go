package core

// Color is an ANSI 256-color palette index.
// ColorNone leaves the terminal default untouched.
type Color int16

// ColorNone means "no color set".
const ColorNone Color = -1

// Common palette entries.
const (
	ColorBlack  Color = 16
	ColorRed    Color = 196
	ColorGreen  Color = 46
	ColorCyan   Color = 116
	ColorWhite  Color = 15
	ColorGray   Color = 245
	ColorYellow Color = 226
)

// Palette groups the colors used to draw the board.
type Palette struct {
	Background Color
	Border     Color
	Snake      Color
	Apple      Color
}

// DefaultPalette mirrors the classic look: black board, cyan cell borders,
// green snake and red apple.
func DefaultPalette() Palette {
	return Palette{
		Background: ColorBlack,
		Border:     ColorCyan,
		Snake:      ColorGreen,
		Apple:      ColorRed,
	}
}
