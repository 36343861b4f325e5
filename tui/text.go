package tui

import (
	"github.com/lixenwraith/codefield/codeinput"
	"github.com/mattn/go-runewidth"
)

// Text draws s starting at x,y, clipped to the region, and returns the columns used
func (r Region) Text(x, y int, s string, st Style) int {
	start := x
	for _, g := range codeinput.Graphemes(s) {
		if x >= r.W {
			break
		}
		x += r.Grapheme(x, y, g, st)
	}
	return x - start
}

// StringWidth returns the display width of s in columns
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Align positions content inside the available width
type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// offset returns the leading columns for content of width w inside avail
func (a Align) offset(w, avail int) int {
	switch a {
	case AlignLeft:
		return 0
	case AlignRight:
		return max(0, avail-w)
	default:
		return max(0, (avail-w)/2)
	}
}
