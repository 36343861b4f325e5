package tui

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Sides selects which edges of a border are drawn
type Sides uint8

const (
	SideTop Sides = 1 << iota
	SideRight
	SideBottom
	SideLeft

	SidesAll = SideTop | SideRight | SideBottom | SideLeft
)

// Has reports whether every side in o is set
func (s Sides) Has(o Sides) bool {
	return s&o == o
}

// orAll treats the zero value as a full border
func (s Sides) orAll() Sides {
	if s == 0 {
		return SidesAll
	}
	return s
}

// Insets returns the columns and rows a border consumes on each edge
func (s Sides) Insets() (top, right, bottom, left int) {
	s = s.orAll()
	return boolToInt(s.Has(SideTop)), boolToInt(s.Has(SideRight)),
		boolToInt(s.Has(SideBottom)), boolToInt(s.Has(SideLeft))
}

// BorderLine maps CSS-like border thickness and radius to a glyph set
func BorderLine(thickness, radius int) LineType {
	switch {
	case thickness <= 0:
		return LineNone
	case thickness >= 3:
		return LineDouble
	case thickness == 2:
		return LineHeavy
	case radius > 0:
		return LineRounded
	default:
		return LineSingle
	}
}

// Box draws the selected border edges around the region
func (r Region) Box(line LineType, sides Sides, st Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	sides = sides.orAll()
	chars := boxChars[line]
	top, right := sides.Has(SideTop), sides.Has(SideRight)
	bottom, left := sides.Has(SideBottom), sides.Has(SideLeft)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		if top {
			r.Cell(x, 0, chars[boxH], st)
		}
		if bottom {
			r.Cell(x, r.H-1, chars[boxH], st)
		}
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		if left {
			r.Cell(0, y, chars[boxV], st)
		}
		if right {
			r.Cell(r.W-1, y, chars[boxV], st)
		}
	}

	// Corners degrade to an edge glyph when only one adjoining side is drawn
	r.corner(0, 0, top, left, chars[boxTL], chars, st)
	r.corner(r.W-1, 0, top, right, chars[boxTR], chars, st)
	r.corner(0, r.H-1, bottom, left, chars[boxBL], chars, st)
	r.corner(r.W-1, r.H-1, bottom, right, chars[boxBR], chars, st)
}

func (r Region) corner(x, y int, horizontal, vertical bool, ch rune, chars [6]rune, st Style) {
	switch {
	case horizontal && vertical:
		r.Cell(x, y, ch, st)
	case horizontal:
		r.Cell(x, y, chars[boxH], st)
	case vertical:
		r.Cell(x, y, chars[boxV], st)
	}
}

// boolToInt converts boolean to integer (0 or 1)
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
