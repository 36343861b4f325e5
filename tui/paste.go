package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// pasteBuffer collects key events delivered between bracketed paste markers
type pasteBuffer struct {
	on  bool
	buf strings.Builder
}

// event consumes paste markers; it returns the payload and true when a paste completes
func (p *pasteBuffer) event(ev *tcell.EventPaste) (string, bool) {
	if ev.Start() {
		p.on = true
		p.buf.Reset()
		return "", false
	}
	p.on = false
	return p.buf.String(), true
}

// key buffers a key while a paste is open and reports whether it was consumed.
// Line breaks and tabs are dropped, single-line fields cannot hold them.
func (p *pasteBuffer) key(ev *tcell.EventKey) bool {
	if !p.on {
		return false
	}
	if ev.Key() == tcell.KeyRune {
		p.buf.WriteRune(ev.Rune())
	}
	return true
}
