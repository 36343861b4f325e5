package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codefield/codeinput"
)

// BoxField hosts a CellEngine: one bordered box per character
type BoxField struct {
	rejectHook
	engine *codeinput.CellEngine
	opts   BoxOpts
	paste  pasteBuffer
}

// NewBoxField validates cfg and builds the engine
func NewBoxField(cfg codeinput.Config, opts BoxOpts, engineOpts ...codeinput.Option) (*BoxField, error) {
	e, err := codeinput.NewCellEngine(cfg, engineOpts...)
	if err != nil {
		return nil, err
	}
	return &BoxField{engine: e, opts: opts}, nil
}

// Engine returns the underlying engine
func (f *BoxField) Engine() *codeinput.CellEngine {
	return f.engine
}

// Handle exposes the host control capability
func (f *BoxField) Handle() codeinput.Handle {
	return f.engine
}

// State reports the engine completion state
func (f *BoxField) State() codeinput.State {
	return f.engine.State()
}

// Mount focuses cell 0 when the config asks for auto-focus
func (f *BoxField) Mount() bool {
	if !f.engine.Config().AutoFocus {
		return false
	}
	f.engine.FocusCell(0)
	return true
}

// Draw renders the cells
func (f *BoxField) Draw(r Region, focused bool) (w, h int) {
	opts := f.opts
	opts.Focused = focused
	return r.CodeBoxes(f.engine, opts)
}

// HandleEvent maps keys on the focused cell to engine operations
func (f *BoxField) HandleEvent(ev tcell.Event) bool {
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

func (f *BoxField) handleKey(ev *tcell.EventKey) bool {
	e := f.engine
	i := e.Focused()
	switch ev.Key() {
	case tcell.KeyRune:
		if !e.OnCharacterEntered(i, string(ev.Rune())) {
			f.reject()
			return false
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		// An empty cell relocates focus; a filled one is cleared in place
		if e.OnBackspace(i) {
			return true
		}
		return e.Cell(i) != "" && e.OnCharacterEntered(i, "")
	case tcell.KeyDelete:
		return e.Cell(i) != "" && e.OnCharacterEntered(i, "")
	case tcell.KeyLeft:
		return e.OnArrowLeft(i)
	case tcell.KeyRight:
		return e.OnArrowRight(i)
	}
	return false
}
