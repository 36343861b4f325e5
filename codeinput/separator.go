package codeinput

import "slices"

// SeparatorSet is a sorted set of boundary positions; p marks the boundary after the p-th character
type SeparatorSet struct {
	positions []int
}

// NewSeparatorSet builds a set from positions, dropping duplicates
func NewSeparatorSet(positions []int) SeparatorSet {
	p := slices.Clone(positions)
	slices.Sort(p)
	return SeparatorSet{positions: slices.Compact(p)}
}

// Has reports whether p is a member
func (s SeparatorSet) Has(p int) bool {
	_, ok := slices.BinarySearch(s.positions, p)
	return ok
}

// Len returns the number of distinct positions
func (s SeparatorSet) Len() int {
	return len(s.positions)
}

// Positions returns a copy of the sorted positions
func (s SeparatorSet) Positions() []int {
	return slices.Clone(s.positions)
}

// After reports whether a glyph follows cell i (0-based)
func (s SeparatorSet) After(i int) bool {
	return s.Has(i + 1)
}

// Before reports whether a glyph precedes logical index i in a masked display
func (s SeparatorSet) Before(i int) bool {
	return i > 0 && s.Has(i)
}

// Rendered returns how many glyphs a masked display of length characters
// shows before logical index i. Trailing boundaries are never drawn.
func (s SeparatorSet) Rendered(i, length int) int {
	n := 0
	for _, p := range s.positions {
		if p > i || p >= length {
			break
		}
		n++
	}
	return n
}
