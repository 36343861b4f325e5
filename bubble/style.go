package bubble

import "github.com/charmbracelet/lipgloss"

// Styles defines lipgloss styles for code inputs
type Styles struct {
	Frame     lipgloss.Style // Cell border for box inputs, field border for line inputs
	Focused   lipgloss.Style
	Complete  lipgloss.Style
	Disabled  lipgloss.Style
	Text      lipgloss.Style
	Separator lipgloss.Style
	Hint      lipgloss.Style // Placeholder glyphs
	Cursor    lipgloss.Style
}

// DefaultStyles returns rounded borders in the tcell host's palette
func DefaultStyles() Styles {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#505064")).
		Padding(0, 1)
	return Styles{
		Frame:     frame,
		Focused:   frame.BorderForeground(lipgloss.Color("#64B4DC")),
		Complete:  frame.BorderForeground(lipgloss.Color("#50C850")),
		Disabled:  frame.BorderForeground(lipgloss.Color("#3C3C3C")).Foreground(lipgloss.Color("#3C3C3C")),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("#DCDCDC")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#64646E")).Faint(true),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}

// frameFor picks the frame style by precedence: disabled, focused, complete
func (s Styles) frameFor(disabled, focused, complete bool) lipgloss.Style {
	switch {
	case disabled:
		return s.Disabled
	case focused:
		return s.Focused
	case complete:
		return s.Complete
	default:
		return s.Frame
	}
}

// Sides restricts which frame edges are drawn, in CSS order
func (s Styles) Sides(top, right, bottom, left bool) Styles {
	set := func(st lipgloss.Style) lipgloss.Style {
		return st.BorderTop(top).BorderRight(right).BorderBottom(bottom).BorderLeft(left)
	}
	s.Frame = set(s.Frame)
	s.Focused = set(s.Focused)
	s.Complete = set(s.Complete)
	s.Disabled = set(s.Disabled)
	return s
}
