package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codefield/codeinput"
	"github.com/lixenwraith/codefield/tui"
)

// Field kinds
const (
	KindBox  = "box"
	KindLine = "line"
)

// Sentinel errors
var (
	ErrUnknownFormat = errors.New("unknown config format")
	ErrUnknownKind   = errors.New("unknown field kind")
	ErrDuplicateName = errors.New("duplicate field name")
	ErrMissingName   = errors.New("field name required")
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidAlign  = errors.New("invalid alignment")
	ErrInvalidSide   = errors.New("invalid border side")
	ErrNoFields      = errors.New("no fields defined")
)

// File is a complete form definition
type File struct {
	Title  string  `toml:"title" yaml:"title"`
	Theme  Theme   `toml:"theme" yaml:"theme"`
	Fields []Field `toml:"fields" yaml:"fields"`
}

// Theme overrides tui.DefaultTheme colors; values are tcell color names or #rrggbb
type Theme struct {
	Bg          string `toml:"bg" yaml:"bg"`
	Fg          string `toml:"fg" yaml:"fg"`
	Border      string `toml:"border" yaml:"border"`
	Focus       string `toml:"focus" yaml:"focus"`
	Complete    string `toml:"complete" yaml:"complete"`
	Separator   string `toml:"separator" yaml:"separator"`
	Placeholder string `toml:"placeholder" yaml:"placeholder"`
	Disabled    string `toml:"disabled" yaml:"disabled"`
	Label       string `toml:"label" yaml:"label"`
	Hint        string `toml:"hint" yaml:"hint"`
}

// Field declares one code input
type Field struct {
	Name          string `toml:"name" yaml:"name"`
	Label         string `toml:"label" yaml:"label"`
	Kind          string `toml:"kind" yaml:"kind"`
	Length        int    `toml:"length" yaml:"length"`
	Separators    []int  `toml:"separators" yaml:"separators"`
	SeparatorChar string `toml:"separator_char" yaml:"separator_char"`
	Placeholder   string `toml:"placeholder" yaml:"placeholder"`
	Initial       string `toml:"initial" yaml:"initial"`
	Disabled      bool   `toml:"disabled" yaml:"disabled"`
	AutoFocus     bool   `toml:"auto_focus" yaml:"auto_focus"`
	Mask          string `toml:"mask" yaml:"mask"`
	Style         Style  `toml:"style" yaml:"style"`
}

// Style holds renderer visuals; zero values select renderer defaults
type Style struct {
	BorderThickness *int     `toml:"border_thickness" yaml:"border_thickness"` // 0 = none, 1 = single, 2 = heavy, 3+ = double
	BorderRadius    *int     `toml:"border_radius" yaml:"border_radius"`       // > 0 rounds single borders
	Sides           []string `toml:"sides" yaml:"sides"`                       // top, right, bottom, left
	Bold            bool     `toml:"bold" yaml:"bold"`

	// Box
	CellWidth  int  `toml:"cell_width" yaml:"cell_width"`
	CellHeight int  `toml:"cell_height" yaml:"cell_height"`
	Gap        *int `toml:"gap" yaml:"gap"`

	// Line
	Width         int    `toml:"width" yaml:"width"`
	LetterSpacing *int   `toml:"letter_spacing" yaml:"letter_spacing"`
	PaddingLeft   *int   `toml:"padding_left" yaml:"padding_left"`
	PaddingRight  *int   `toml:"padding_right" yaml:"padding_right"`
	Align         string `toml:"align" yaml:"align"`

	// Colors override the form theme for this field only
	Colors Theme `toml:"colors" yaml:"colors"`
}

// Validate checks every field, wrapping the first failure with its name
func (f *File) Validate() error {
	if len(f.Fields) == 0 {
		return ErrNoFields
	}
	if _, err := f.Theme.Tui(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(f.Fields))
	for i := range f.Fields {
		fd := &f.Fields[i]
		if fd.Name == "" {
			return fmt.Errorf("field %d: %w", i, ErrMissingName)
		}
		if seen[fd.Name] {
			return fmt.Errorf("field %q: %w", fd.Name, ErrDuplicateName)
		}
		seen[fd.Name] = true
		if err := fd.Validate(); err != nil {
			return fmt.Errorf("field %q: %w", fd.Name, err)
		}
	}
	return nil
}

// Validate checks kind, engine config and visuals
func (fd *Field) Validate() error {
	switch fd.Kind {
	case KindBox, KindLine:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, fd.Kind)
	}
	if err := fd.Config().Validate(); err != nil {
		return err
	}
	if _, err := parseAlign(fd.Style.Align); err != nil {
		return err
	}
	if _, err := parseSides(fd.Style.Sides); err != nil {
		return err
	}
	if _, err := fd.Style.Colors.Apply(tui.DefaultTheme); err != nil {
		return err
	}
	return nil
}

// Config returns the engine configuration
func (fd *Field) Config() codeinput.Config {
	return codeinput.Config{
		NumberOfChars:      fd.Length,
		SeparatorPositions: fd.Separators,
		SeparatorChar:      fd.SeparatorChar,
		InitialValue:       fd.Initial,
		Placeholder:        fd.Placeholder,
		Disabled:           fd.Disabled,
		AutoFocus:          fd.AutoFocus,
	}
}

// Title returns the label, falling back to the name
func (fd *Field) Title() string {
	if fd.Label != "" {
		return fd.Label
	}
	return fd.Name
}

// border maps thickness and radius to a glyph set, default rounded single
func (s Style) border() tui.LineType {
	thickness, radius := 1, 1
	if s.BorderThickness != nil {
		thickness = *s.BorderThickness
	}
	if s.BorderRadius != nil {
		radius = *s.BorderRadius
	}
	return tui.BorderLine(thickness, radius)
}

// BoxOpts returns renderer options for a box field
func (fd *Field) BoxOpts(theme tui.Theme) tui.BoxOpts {
	opts := tui.DefaultBoxOpts()
	st := fd.Style
	opts.Border = st.border()
	opts.Sides, _ = parseSides(st.Sides)
	opts.Bold = st.Bold
	opts.Mask = fd.Mask
	opts.Theme, _ = st.Colors.Apply(theme)
	if st.CellWidth > 0 {
		opts.CellWidth = st.CellWidth
	}
	if st.CellHeight > 0 {
		opts.CellHeight = st.CellHeight
	}
	if st.Gap != nil {
		opts.Gap = *st.Gap
	}
	return opts
}

// LineOpts returns renderer options for a line field
func (fd *Field) LineOpts(theme tui.Theme) tui.LineOpts {
	opts := tui.DefaultLineOpts()
	st := fd.Style
	opts.Border = st.border()
	opts.Sides, _ = parseSides(st.Sides)
	opts.Align, _ = parseAlign(st.Align)
	opts.Bold = st.Bold
	opts.Mask = fd.Mask
	opts.Theme, _ = st.Colors.Apply(theme)
	opts.Width = st.Width
	if st.LetterSpacing != nil {
		opts.LetterSpacing = *st.LetterSpacing
	}
	if st.PaddingLeft != nil {
		opts.PaddingLeft = *st.PaddingLeft
	}
	if st.PaddingRight != nil {
		opts.PaddingRight = *st.PaddingRight
	}
	return opts
}

// Build constructs the tcell widget for the field
func (fd *Field) Build(theme tui.Theme, opts ...codeinput.Option) (tui.Field, error) {
	switch fd.Kind {
	case KindBox:
		return tui.NewBoxField(fd.Config(), fd.BoxOpts(theme), opts...)
	case KindLine:
		return tui.NewLineField(fd.Config(), fd.LineOpts(theme), opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, fd.Kind)
	}
}

// Tui resolves the theme against tui.DefaultTheme
func (t Theme) Tui() (tui.Theme, error) {
	return t.Apply(tui.DefaultTheme)
}

// Apply overrides the colors of base that t sets; base is returned unchanged on error
func (t Theme) Apply(base tui.Theme) (tui.Theme, error) {
	th := base
	pairs := []struct {
		name string
		dst  *tcell.Color
	}{
		{t.Bg, &th.Bg},
		{t.Fg, &th.Fg},
		{t.Border, &th.Border},
		{t.Focus, &th.FocusBorder},
		{t.Complete, &th.CompleteBorder},
		{t.Separator, &th.Separator},
		{t.Placeholder, &th.Placeholder},
		{t.Disabled, &th.Disabled},
		{t.Label, &th.Label},
		{t.Hint, &th.Hint},
	}
	for _, p := range pairs {
		if p.name == "" {
			continue
		}
		c := tcell.GetColor(p.name)
		if c == tcell.ColorDefault && !strings.EqualFold(p.name, "default") {
			return base, fmt.Errorf("%w: %q", ErrInvalidColor, p.name)
		}
		*p.dst = c
	}
	return th, nil
}

func parseAlign(s string) (tui.Align, error) {
	switch strings.ToLower(s) {
	case "", "center":
		return tui.AlignCenter, nil
	case "left":
		return tui.AlignLeft, nil
	case "right":
		return tui.AlignRight, nil
	default:
		return tui.AlignCenter, fmt.Errorf("%w: %q", ErrInvalidAlign, s)
	}
}

// parseSides maps side names to a mask; an empty list draws all sides
func parseSides(names []string) (tui.Sides, error) {
	var sides tui.Sides
	for _, n := range names {
		switch strings.ToLower(n) {
		case "top":
			sides |= tui.SideTop
		case "right":
			sides |= tui.SideRight
		case "bottom":
			sides |= tui.SideBottom
		case "left":
			sides |= tui.SideLeft
		case "all":
			sides |= tui.SidesAll
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidSide, n)
		}
	}
	return sides, nil
}
