package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Region represents a rectangular area of a screen
// All coordinates are relative to the region's origin
type Region struct {
	Screen tcell.Screen
	X, Y   int // Absolute position on screen
	W, H   int // Region dimensions
}

// NewRegion creates a region on s with bounds
func NewRegion(s tcell.Screen, x, y, w, h int) Region {
	return Region{Screen: s, X: x, Y: y, W: w, H: h}
}

// Root returns a region covering the whole screen
func Root(s tcell.Screen) Region {
	w, h := s.Size()
	return NewRegion(s, 0, 0, w, h)
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	return Region{
		Screen: r.Screen,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      max(w, 0),
		H:      max(h, 0),
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

func (r Region) contains(x, y int) bool {
	return x >= 0 && x < r.W && y >= 0 && y < r.H
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, st Style) {
	if r.Screen == nil || !r.contains(x, y) {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, st.Tcell())
}

// Grapheme draws one grapheme cluster at x,y and returns the columns it occupies
func (r Region) Grapheme(x, y int, g string, st Style) int {
	if g == "" {
		return 0
	}
	runes := []rune(g)
	w := max(1, runewidth.StringWidth(g))
	if r.Screen != nil && r.contains(x, y) && x+w <= r.W {
		r.Screen.SetContent(r.X+x, r.Y+y, runes[0], runes[1:], st.Tcell())
	}
	return w
}

// Fill paints every cell of the region with st
func (r Region) Fill(st Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', st)
		}
	}
}

// ShowCursor places the terminal cursor at x,y when inside the region
func (r Region) ShowCursor(x, y int) {
	if r.Screen == nil || !r.contains(x, y) {
		return
	}
	r.Screen.ShowCursor(r.X+x, r.Y+y)
}

// Bounds returns absolute position and dimensions
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}
