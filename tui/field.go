package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codefield/codeinput"
)

// Field is a code input bound to tcell events
type Field interface {
	// HandleEvent applies ev and reports whether it was consumed
	HandleEvent(ev tcell.Event) bool
	// Draw renders into r and returns the size used
	Draw(r Region, focused bool) (w, h int)
	// Handle exposes the host control capability
	Handle() codeinput.Handle
	// State reports the engine completion state
	State() codeinput.State
	// Mount applies mount-time behavior and reports whether the field wants initial focus
	Mount() bool
	// OnReject registers fn for keystrokes the engine refused
	OnReject(fn func())
}

var (
	_ Field = (*BoxField)(nil)
	_ Field = (*LineField)(nil)
)

// rejectHook is embedded by fields to report keystrokes the engine refused
type rejectHook struct {
	fn func()
}

// OnReject registers fn for refused keystrokes and edits
func (h *rejectHook) OnReject(fn func()) {
	h.fn = fn
}

func (h *rejectHook) reject() {
	if h.fn != nil {
		h.fn()
	}
}
