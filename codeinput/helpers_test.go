package codeinput

import "testing"

// recorder captures callback traffic for assertions
type recorder struct {
	changes   []string
	completes []string
	focuses   []int
}

func (r *recorder) options() []Option {
	return []Option{
		WithOnChange(func(v string) { r.changes = append(r.changes, v) }),
		WithOnComplete(func(v string) { r.completes = append(r.completes, v) }),
		WithFocusHook(func(i int) { r.focuses = append(r.focuses, i) }),
	}
}

func newCells(t *testing.T, cfg Config, opts ...Option) *CellEngine {
	t.Helper()
	e, err := NewCellEngine(cfg, opts...)
	if err != nil {
		t.Fatalf("NewCellEngine(%+v) failed: %v", cfg, err)
	}
	return e
}

func newMask(t *testing.T, cfg Config, opts ...Option) *MaskEngine {
	t.Helper()
	e, err := NewMaskEngine(cfg, opts...)
	if err != nil {
		t.Fatalf("NewMaskEngine(%+v) failed: %v", cfg, err)
	}
	return e
}

// typeInto simulates a native field appending one character at the end of the display
func typeInto(e *MaskEngine, s string) {
	for _, ch := range Graphemes(s) {
		if e.OnKeyDown(ch) {
			continue
		}
		e.OnInputChanged(e.Display() + ch)
	}
}
