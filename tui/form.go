package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codefield/codeinput"
)

// FormField pairs a label with a code input
type FormField struct {
	Label string
	Field Field
}

// Form stacks labeled code inputs with focus tracking. Callbacks that engines
// defer until after render are queued on the form's frame and run by Render.
type Form struct {
	Fields []FormField
	Focus  int
	Opts   FormOpts

	frame *codeinput.Deferred
}

// FormOpts configures form rendering
type FormOpts struct {
	LabelWidth int // 0 = widest label + 2
	Spacing    int // Blank rows between fields
	Theme      Theme
	Hints      bool   // Show the completion state beside each label
	Title      string // Drawn above the fields when set
	Footer     string // Drawn on the last row when set
}

// NewForm creates an empty form draining frame after every render
func NewForm(frame *codeinput.Deferred) *Form {
	if frame == nil {
		frame = &codeinput.Deferred{}
	}
	return &Form{frame: frame, Opts: FormOpts{Spacing: 1, Hints: true}}
}

// Frame returns the after-render queue engines should schedule on
func (f *Form) Frame() *codeinput.Deferred {
	return f.frame
}

// Add appends a labeled field
func (f *Form) Add(label string, field Field) {
	f.Fields = append(f.Fields, FormField{Label: label, Field: field})
}

// Active returns the focused field, or nil
func (f *Form) Active() Field {
	if f.Focus >= 0 && f.Focus < len(f.Fields) {
		return f.Fields[f.Focus].Field
	}
	return nil
}

// Mount applies each field's mount behavior; the last auto-focus field wins focus
func (f *Form) Mount() {
	for i, ff := range f.Fields {
		if ff.Field.Mount() {
			f.Focus = i
		}
	}
}

// FocusNext moves focus to the next field, wrapping around
func (f *Form) FocusNext() {
	if len(f.Fields) > 0 {
		f.focus((f.Focus + 1) % len(f.Fields))
	}
}

// FocusPrev moves focus to the previous field, wrapping around
func (f *Form) FocusPrev() {
	if len(f.Fields) > 0 {
		f.focus((f.Focus - 1 + len(f.Fields)) % len(f.Fields))
	}
}

// FocusField focuses field i when it exists
func (f *Form) FocusField(i int) {
	if i >= 0 && i < len(f.Fields) {
		f.focus(i)
	}
}

// Incomplete returns the index of the first field that is not complete, or -1
func (f *Form) Incomplete() int {
	for i, ff := range f.Fields {
		if ff.Field.State() != codeinput.StateComplete {
			return i
		}
	}
	return -1
}

func (f *Form) focus(i int) {
	f.Focus = i
	f.Fields[i].Field.Handle().Focus()
}

// HandleEvent processes form navigation and forwards everything else to the focused field
func (f *Form) HandleEvent(ev tcell.Event) bool {
	if key, ok := ev.(*tcell.EventKey); ok {
		switch key.Key() {
		case tcell.KeyTab:
			f.FocusNext()
			return true
		case tcell.KeyBacktab:
			f.FocusPrev()
			return true
		case tcell.KeyUp:
			f.FocusPrev()
			return true
		case tcell.KeyDown:
			f.FocusNext()
			return true
		}
	}
	if field := f.Active(); field != nil {
		return field.HandleEvent(ev)
	}
	return false
}

// Draw renders labels and fields into r and returns the height used
func (f *Form) Draw(r Region) int {
	th := themeOrDefault(f.Opts.Theme)
	labelW := f.Opts.LabelWidth
	if labelW <= 0 {
		for _, ff := range f.Fields {
			labelW = max(labelW, StringWidth(ff.Label))
		}
		labelW += 2
	}
	spacing := max(0, f.Opts.Spacing)

	if r.Screen != nil {
		r.Screen.HideCursor()
	}
	r.Fill(Style{Bg: th.Bg})

	y := 0
	if f.Opts.Title != "" {
		r.Text(0, 0, f.Opts.Title, Style{Fg: th.Fg, Bg: th.Bg, Attr: tcell.AttrBold})
		y = 2
	}
	if f.Opts.Footer != "" && r.H > 0 {
		r.Text(0, r.H-1, f.Opts.Footer, Style{Fg: th.Hint, Bg: th.Bg})
	}
	for i, ff := range f.Fields {
		if y >= r.H {
			break
		}
		focused := i == f.Focus
		area := r.Sub(labelW, y, r.W-labelW, r.H-y)
		_, h := ff.Field.Draw(area, focused)
		h = max(h, 1)

		ly := y + h/2
		r.Text(0, ly, ff.Label+":", Style{Fg: th.Label, Bg: th.Bg})
		if f.Opts.Hints && ly+1 < y+h {
			r.Text(0, ly+1, ff.Field.State().String(), Style{Fg: th.Hint, Bg: th.Bg, Attr: tcell.AttrDim})
		}
		y += h + spacing
	}
	return y
}

// Render draws a full frame, then runs deferred callbacks and redraws if any ran
func (f *Form) Render(s tcell.Screen) {
	f.paint(s)
	if f.frame.Flush() > 0 {
		f.paint(s)
	}
}

func (f *Form) paint(s tcell.Screen) {
	s.Clear()
	f.Draw(Root(s))
	s.Show()
}
