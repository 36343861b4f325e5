package tui

import (
	"testing"

	"github.com/lixenwraith/codefield/codeinput"
)

func lineEngine(t *testing.T, cfg codeinput.Config, opts ...codeinput.Option) *codeinput.MaskEngine {
	t.Helper()
	e, err := codeinput.NewMaskEngine(cfg, opts...)
	if err != nil {
		t.Fatalf("NewMaskEngine failed: %v", err)
	}
	return e
}

func cardConfig() codeinput.Config {
	cfg := codeinput.DefaultConfig(16)
	cfg.SeparatorPositions = []int{4, 8, 12}
	cfg.SeparatorChar = " "
	return cfg
}

func TestLineSizeAuto(t *testing.T) {
	e := lineEngine(t, cardConfig())

	// 16 chars + 15 gaps + 3 separators with spacing + padding + border
	w, h := LineSize(e, DefaultLineOpts())
	if w != 41 || h != 3 {
		t.Errorf("Expected 41x3, got %dx%d", w, h)
	}

	opts := DefaultLineOpts()
	opts.Sides = SideBottom
	opts.Width = 30
	w, h = LineSize(e, opts)
	if w != 30 || h != 2 {
		t.Errorf("Expected explicit 30x2, got %dx%d", w, h)
	}
}

func plainLineOpts() LineOpts {
	return LineOpts{
		Width:        12,
		PaddingLeft:  1,
		PaddingRight: 1,
		Align:        AlignLeft,
		Border:       LineSingle,
		Focused:      true,
	}
}

func TestCodeLineRendersDisplay(t *testing.T) {
	s := newScreen(t, 20, 3)
	cfg := codeinput.DefaultConfig(6)
	cfg.SeparatorPositions = []int{3}
	cfg.InitialValue = "123456"
	e := lineEngine(t, cfg)

	Root(s).CodeLine(e, plainLineOpts())

	want := "123-456"
	for i, r := range want {
		if got := runeAt(s, 2+i, 1); got != r {
			t.Errorf("At column %d: expected %q, got %q", 2+i, r, got)
		}
	}
	if got := fgAt(s, 5, 1); got != DefaultTheme.Separator {
		t.Errorf("Expected separator color, got %v", got)
	}
	if got := runeAt(s, 0, 0); got != '┌' {
		t.Errorf("Expected border corner, got %q", got)
	}
}

func TestCodeLineMaskKeepsSeparators(t *testing.T) {
	s := newScreen(t, 20, 3)
	cfg := codeinput.DefaultConfig(6)
	cfg.SeparatorPositions = []int{3}
	cfg.InitialValue = "1234"
	e := lineEngine(t, cfg)

	opts := plainLineOpts()
	opts.Mask = "*"
	Root(s).CodeLine(e, opts)

	want := "***-*"
	for i, r := range []rune(want) {
		if got := runeAt(s, 2+i, 1); got != r {
			t.Errorf("At column %d: expected %q, got %q", 2+i, r, got)
		}
	}
}

func TestCodeLineCaret(t *testing.T) {
	s := newScreen(t, 20, 3)
	cfg := codeinput.DefaultConfig(6)
	cfg.SeparatorPositions = []int{3}
	cfg.InitialValue = "123456"
	e := lineEngine(t, cfg)

	Root(s).CodeLine(e, plainLineOpts())
	if x, y, _ := s.GetCursor(); x != 2 || y != 1 {
		t.Errorf("Expected caret at (2,1), got (%d,%d)", x, y)
	}

	e.SetCaret(e.DisplayOffset(e.Len()))
	Root(s).CodeLine(e, plainLineOpts())
	if x, y, _ := s.GetCursor(); x != 9 || y != 1 {
		t.Errorf("Expected caret at end (9,1), got (%d,%d)", x, y)
	}
}

func TestCodeLinePlaceholder(t *testing.T) {
	s := newScreen(t, 20, 3)
	cfg := codeinput.DefaultConfig(4)
	cfg.Placeholder = "0000"
	e := lineEngine(t, cfg)

	Root(s).CodeLine(e, plainLineOpts())
	if got := runeAt(s, 2, 1); got != '0' {
		t.Errorf("Expected placeholder glyph, got %q", got)
	}
	if got := fgAt(s, 2, 1); got != DefaultTheme.Placeholder {
		t.Errorf("Expected placeholder color, got %v", got)
	}
}

func TestCaretColumn(t *testing.T) {
	glyphs := []string{"1", "2", "-", "3"}
	cases := []struct {
		c, spacing, want int
	}{
		{0, 1, 0},
		{2, 0, 2},
		{2, 1, 4},
		{4, 1, 8},
	}
	for _, c := range cases {
		if got := caretColumn(glyphs, c.c, c.spacing); got != c.want {
			t.Errorf("caretColumn(%d, spacing %d): expected %d, got %d", c.c, c.spacing, c.want, got)
		}
	}
}
