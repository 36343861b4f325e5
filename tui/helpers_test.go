package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func fgAt(s tcell.Screen, x, y int) tcell.Color {
	_, _, st, _ := s.GetContent(x, y)
	fg, _, _ := st.Decompose()
	return fg
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func typeRunes(f Field, s string) {
	for _, r := range s {
		f.HandleEvent(runeKey(r))
	}
}

func paste(f Field, s string) bool {
	f.HandleEvent(tcell.NewEventPaste(true))
	typeRunes(f, s)
	return f.HandleEvent(tcell.NewEventPaste(false))
}
