package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codefield/codeinput"
)

// LineOpts configures line-style code input rendering
type LineOpts struct {
	Width         int // Total columns including border, 0 = auto-size
	LetterSpacing int // Blank columns between glyphs
	PaddingLeft   int
	PaddingRight  int
	Align         Align
	Border        LineType
	Sides         Sides  // Drawn edges, 0 = all
	Mask          string // Shown instead of logical glyphs, "" = none
	Bold          bool
	Theme         Theme
	Focused       bool // Show the caret
}

// DefaultLineOpts returns terminal-sized defaults
func DefaultLineOpts() LineOpts {
	return LineOpts{
		LetterSpacing: 1,
		PaddingLeft:   1,
		PaddingRight:  1,
		Border:        LineRounded,
	}
}

func (o LineOpts) withDefaults() LineOpts {
	o.LetterSpacing = max(0, o.LetterSpacing)
	o.PaddingLeft = max(0, o.PaddingLeft)
	o.PaddingRight = max(0, o.PaddingRight)
	o.Theme = themeOrDefault(o.Theme)
	return o
}

// LineSize returns the columns and rows a line input occupies
func LineSize(e *codeinput.MaskEngine, opts LineOpts) (w, h int) {
	opts = opts.withDefaults()
	top, right, bottom, left := opts.Sides.Insets()
	h = 1 + top + bottom
	if opts.Width > 0 {
		return opts.Width, h
	}
	cfg := e.Config()
	sample := e.Value() + cfg.Placeholder + opts.Mask
	m := codeinput.CellMetrics(sample, cfg.Separator(), opts.LetterSpacing, opts.PaddingLeft, opts.PaddingRight)
	return int(math.Ceil(e.AutoWidth(m))) + left + right, h
}

// CodeLine renders a line-style input and returns the size used
func (r Region) CodeLine(e *codeinput.MaskEngine, opts LineOpts) (w, h int) {
	opts = opts.withDefaults()
	th := opts.Theme
	cfg := e.Config()
	sep := cfg.Separator()
	w, h = LineSize(e, opts)
	top, right, _, left := opts.Sides.Insets()

	area := r.Sub(0, 0, w, h)
	area.Fill(Style{Bg: th.Bg})
	focused := opts.Focused && !cfg.Disabled
	area.Box(opts.Border, opts.Sides, Style{
		Fg: th.borderColor(cfg.Disabled, focused, e.State() == codeinput.StateComplete),
		Bg: th.Bg,
	})

	inner := area.Sub(left, top, w-left-right, 1)
	avail := inner.W - opts.PaddingLeft - opts.PaddingRight

	base := Style{Fg: th.Fg, Bg: th.Bg}
	if opts.Bold {
		base.Attr |= tcell.AttrBold
	}
	if cfg.Disabled {
		base.Fg = th.Disabled
	}

	glyphs := codeinput.Graphemes(e.Display())
	contentX := opts.PaddingLeft + opts.Align.offset(spanWidth(glyphs, opts.LetterSpacing), avail)

	if len(glyphs) == 0 && cfg.Placeholder != "" {
		ph := codeinput.Graphemes(cfg.Placeholder)
		st := Style{Fg: th.Placeholder, Bg: th.Bg, Attr: tcell.AttrDim}
		x := opts.PaddingLeft + opts.Align.offset(spanWidth(ph, opts.LetterSpacing), avail)
		for _, g := range ph {
			x += inner.Grapheme(x, 0, g, st) + opts.LetterSpacing
		}
	}

	x := contentX
	for _, g := range glyphs {
		st, shown := base, g
		switch {
		case g == sep:
			st.Fg = th.Separator
		case opts.Mask != "":
			shown = opts.Mask
		}
		x += inner.Grapheme(x, 0, shown, st) + opts.LetterSpacing
	}

	if focused {
		caret := min(e.Caret(), len(glyphs))
		inner.ShowCursor(contentX+caretColumn(glyphs, caret, opts.LetterSpacing), 0)
	}
	return w, h
}

// spanWidth measures glyphs laid out with spacing between them, not after the last
func spanWidth(glyphs []string, spacing int) int {
	w := 0
	for _, g := range glyphs {
		w += max(1, StringWidth(g))
	}
	if len(glyphs) > 1 {
		w += spacing * (len(glyphs) - 1)
	}
	return w
}

// caretColumn returns the column before glyph c, past the spacing that precedes it
func caretColumn(glyphs []string, c, spacing int) int {
	col := 0
	for _, g := range glyphs[:c] {
		col += max(1, StringWidth(g)) + spacing
	}
	return col
}
