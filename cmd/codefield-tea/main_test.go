package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lixenwraith/codefield/audio"
	"github.com/lixenwraith/codefield/config"
)

func newTestModel(t *testing.T, f *config.File) *model {
	t.Helper()
	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = false
	m, err := newModel(f, audio.NewPlayer(cfg))
	if err != nil {
		t.Fatalf("newModel failed: %v", err)
	}
	return m
}

func TestInitFocusesOneRow(t *testing.T) {
	f := config.Default()
	for i := range f.Fields {
		f.Fields[i].AutoFocus = true
	}
	m := newTestModel(t, f)
	m.Init()

	last := len(f.Fields) - 1
	if m.focus != last {
		t.Fatalf("Expected last auto-focus row %d, got %d", last, m.focus)
	}
	for i, r := range m.rows {
		if got := r.input.Focused(); got != (i == last) {
			t.Errorf("Row %s: expected focused=%v, got %v", r.name, i == last, got)
		}
	}
}

func TestTabMovesFocus(t *testing.T) {
	m := newTestModel(t, config.Default())
	m.Init()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 1 {
		t.Fatalf("Expected focus 1, got %d", m.focus)
	}
	if m.rows[0].input.Focused() || !m.rows[1].input.Focused() {
		t.Errorf("Expected only row 1 focused, got %v %v", m.rows[0].input.Focused(), m.rows[1].input.Focused())
	}
}

func TestEnterRequiresCompleteRows(t *testing.T) {
	m := newTestModel(t, config.Default())
	m.Init()
	m.rows[0].input.Handle().SetValue("123456")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.submitted || m.focus != 1 {
		t.Errorf("Expected submit refused with focus on row 1, got submitted=%v focus=%d", m.submitted, m.focus)
	}

	m.rows[1].input.Handle().SetValue("1234")
	m.rows[2].input.Handle().SetValue("4111111111111111")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.submitted {
		t.Error("Expected submit once every row is complete")
	}
}
