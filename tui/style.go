package tui

import "github.com/gdamore/tcell/v2"

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   tcell.Color
	Bg   tcell.Color
	Attr tcell.AttrMask
}

// Tcell converts the style for screen calls
func (s Style) Tcell() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Fg).Background(s.Bg).Attributes(s.Attr)
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s == Style{}
}

// Theme defines semantic colors for code inputs
type Theme struct {
	Bg             tcell.Color
	Fg             tcell.Color
	Border         tcell.Color
	FocusBorder    tcell.Color
	CompleteBorder tcell.Color
	Separator      tcell.Color
	Placeholder    tcell.Color
	Disabled       tcell.Color
	Label          tcell.Color
	Hint           tcell.Color
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:             tcell.NewRGBColor(20, 20, 30),
	Fg:             tcell.NewRGBColor(220, 220, 220),
	Border:         tcell.NewRGBColor(80, 80, 100),
	FocusBorder:    tcell.NewRGBColor(100, 180, 220),
	CompleteBorder: tcell.NewRGBColor(80, 200, 80),
	Separator:      tcell.NewRGBColor(140, 140, 140),
	Placeholder:    tcell.NewRGBColor(100, 100, 110),
	Disabled:       tcell.NewRGBColor(60, 60, 60),
	Label:          tcell.NewRGBColor(150, 150, 180),
	Hint:           tcell.NewRGBColor(100, 180, 200),
}

func themeOrDefault(t Theme) Theme {
	if t == (Theme{}) {
		return DefaultTheme
	}
	return t
}

// borderColor picks the border color for a field or cell
func (t Theme) borderColor(disabled, focused, complete bool) tcell.Color {
	switch {
	case disabled:
		return t.Disabled
	case focused:
		return t.FocusBorder
	case complete:
		return t.CompleteBorder
	default:
		return t.Border
	}
}
