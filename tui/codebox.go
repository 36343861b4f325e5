package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codefield/codeinput"
)

// BoxOpts configures box-style code input rendering
type BoxOpts struct {
	CellWidth  int      // Columns per cell including border
	CellHeight int      // Rows per cell including border
	Gap        int      // Columns between cells and separators
	Border     LineType // Glyph set for cell borders
	Sides      Sides    // Drawn edges, 0 = all
	Mask       string   // Shown instead of filled content, "" = none
	Bold       bool
	Theme      Theme
	Focused    bool // Highlight the focused cell and show the cursor
}

// DefaultBoxOpts returns terminal-sized defaults
func DefaultBoxOpts() BoxOpts {
	return BoxOpts{
		CellWidth:  5,
		CellHeight: 3,
		Gap:        1,
		Border:     LineRounded,
	}
}

func (o BoxOpts) withDefaults() BoxOpts {
	d := DefaultBoxOpts()
	if o.CellWidth <= 0 {
		o.CellWidth = d.CellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = d.CellHeight
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	o.Theme = themeOrDefault(o.Theme)
	return o
}

// BoxSpan returns the columns a box input occupies: cells, separators and the gaps between them
func BoxSpan(e *codeinput.CellEngine, opts BoxOpts) int {
	opts = opts.withDefaults()
	seps := e.Separators().Len()
	items := e.Len() + seps
	return e.Len()*opts.CellWidth + seps*max(1, StringWidth(e.Config().Separator())) + (items-1)*opts.Gap
}

// placeholderAt returns the placeholder glyph for cell i: per-cell when the
// placeholder spans every cell, otherwise its first glyph
func placeholderAt(ph []string, i, n int) string {
	switch {
	case len(ph) == 0:
		return ""
	case len(ph) == n:
		return ph[i]
	default:
		return ph[0]
	}
}

// CodeBoxes renders a box-style input and returns the size used
func (r Region) CodeBoxes(e *codeinput.CellEngine, opts BoxOpts) (w, h int) {
	opts = opts.withDefaults()
	th := opts.Theme
	cfg := e.Config()
	placeholder := codeinput.Graphemes(cfg.Placeholder)
	complete := e.State() == codeinput.StateComplete
	midY := opts.CellHeight / 2
	sep := cfg.Separator()
	sepW := max(1, StringWidth(sep))

	base := Style{Fg: th.Fg, Bg: th.Bg}
	if opts.Bold {
		base.Attr |= tcell.AttrBold
	}

	x := 0
	for i := 0; i < e.Len(); i++ {
		if i > 0 {
			x += opts.Gap
		}
		focused := opts.Focused && i == e.Focused()
		cell := r.Sub(x, 0, opts.CellWidth, opts.CellHeight)
		cell.Fill(Style{Bg: th.Bg})
		cell.Box(opts.Border, opts.Sides, Style{Fg: th.borderColor(cfg.Disabled, focused, complete), Bg: th.Bg})

		content, st := e.Cell(i), base
		switch {
		case content == "":
			content = placeholderAt(placeholder, i, e.Len())
			st.Fg = th.Placeholder
			st.Attr |= tcell.AttrDim
		case opts.Mask != "":
			content = opts.Mask
		}
		if cfg.Disabled {
			st.Fg = th.Disabled
		}
		cx := (opts.CellWidth - max(1, StringWidth(content))) / 2
		cell.Grapheme(cx, midY, content, st)
		if focused {
			cell.ShowCursor(cx, midY)
		}
		x += opts.CellWidth

		if e.SeparatorAfter(i) {
			x += opts.Gap
			r.Text(x, midY, sep, Style{Fg: th.Separator, Bg: th.Bg})
			x += sepW
		}
	}
	return x, opts.CellHeight
}
