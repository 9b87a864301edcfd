package core

import "testing"

func TestGridWrap(t *testing.T) {
	g := NewGrid(32, 24, 2)

	tests := []struct {
		name     string
		in       Cell
		expected Cell
	}{
		{"inside", Cell{X: 5, Y: 7}, Cell{X: 5, Y: 7}},
		{"off right edge", Cell{X: 32, Y: 3}, Cell{X: 0, Y: 3}},
		{"off left edge", Cell{X: -1, Y: 3}, Cell{X: 31, Y: 3}},
		{"off bottom edge", Cell{X: 4, Y: 24}, Cell{X: 4, Y: 0}},
		{"off top edge", Cell{X: 4, Y: -1}, Cell{X: 4, Y: 23}},
		{"far negative", Cell{X: -33, Y: -49}, Cell{X: 31, Y: 23}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Wrap(tc.in)
			if result != tc.expected {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, result, tc.expected)
			}
			if !g.Contains(result) {
				t.Errorf("Wrap(%v) = %v is outside the board", tc.in, result)
			}
		})
	}
}

func TestGridContains(t *testing.T) {
	g := NewGrid(10, 5, 2)

	tests := []struct {
		name     string
		c        Cell
		expected bool
	}{
		{"origin", Cell{X: 0, Y: 0}, true},
		{"last cell", Cell{X: 9, Y: 4}, true},
		{"right edge (exclusive)", Cell{X: 10, Y: 0}, false},
		{"bottom edge (exclusive)", Cell{X: 0, Y: 5}, false},
		{"negative", Cell{X: -1, Y: 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.c); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestGridCenterAndArea(t *testing.T) {
	g := NewGrid(32, 24, 2)

	if c := g.Center(); c != (Cell{X: 16, Y: 12}) {
		t.Errorf("Center() = %v, expected (16, 12)", c)
	}
	if g.Area() != 768 {
		t.Errorf("Area() = %d, expected 768", g.Area())
	}
	if g.Columns() != 64 {
		t.Errorf("Columns() = %d, expected 64", g.Columns())
	}
	if !g.Valid() {
		t.Error("32x24 grid should be valid")
	}
	if (Grid{Width: 0, Height: 3}).Valid() {
		t.Error("zero-width grid should be invalid")
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, n, expected int
	}{
		{5, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
		{0, 3, 0},
		{7, 0, 0}, // degenerate modulus
	}

	for _, tc := range tests {
		if got := Mod(tc.a, tc.n); got != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.n, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
