package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codefield/codeinput"
)

// LineField hosts a MaskEngine as a single editable line. Edits go through
// the engine's native field emulation, so the caret lands after the next frame.
type LineField struct {
	rejectHook
	engine *codeinput.MaskEngine
	opts   LineOpts
	paste  pasteBuffer
}

// NewLineField validates cfg and builds the engine
func NewLineField(cfg codeinput.Config, opts LineOpts, engineOpts ...codeinput.Option) (*LineField, error) {
	e, err := codeinput.NewMaskEngine(cfg, engineOpts...)
	if err != nil {
		return nil, err
	}
	return &LineField{engine: e, opts: opts}, nil
}

// Engine returns the underlying engine
func (f *LineField) Engine() *codeinput.MaskEngine {
	return f.engine
}

// Handle exposes the host control capability
func (f *LineField) Handle() codeinput.Handle {
	return f.engine
}

// State reports the engine completion state
func (f *LineField) State() codeinput.State {
	return f.engine.State()
}

// Mount requests the caret at the end of the value when auto-focus is set
func (f *LineField) Mount() bool {
	if !f.engine.Config().AutoFocus {
		return false
	}
	f.engine.OnFocus()
	return true
}

// Draw renders the line
func (f *LineField) Draw(r Region, focused bool) (w, h int) {
	opts := f.opts
	opts.Focused = focused
	return r.CodeLine(f.engine, opts)
}

// HandleEvent edits the display text around the caret
func (f *LineField) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventPaste:
		if text, done := f.paste.event(ev); done {
			return f.engine.OnPaste(text)
		}
		return true
	case *tcell.EventKey:
		if f.paste.key(ev) {
			return true
		}
		return f.handleKey(ev)
	}
	return false
}

func (f *LineField) handleKey(ev *tcell.EventKey) bool {
	e := f.engine
	switch ev.Key() {
	case tcell.KeyRune:
		if !e.Insert(string(ev.Rune())) {
			f.reject()
			return false
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return e.DeleteBackward()
	case tcell.KeyDelete:
		return e.DeleteForward()
	case tcell.KeyLeft:
		e.MoveCaret(-1)
		return true
	case tcell.KeyRight:
		e.MoveCaret(1)
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		e.SetCaret(0)
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		e.CaretEnd()
		return true
	}
	return false
}
