package codeinput

import "testing"

func TestInsertAtCaret(t *testing.T) {
	var r recorder
	e := newMask(t, cardConfig(), r.options()...)

	for _, ch := range []string{"1", "2", "3", "4", "5"} {
		if !e.Insert(ch) {
			t.Fatalf("Insert(%q) refused", ch)
		}
	}
	if e.Display() != "1234 5" {
		t.Errorf("Expected display %q, got %q", "1234 5", e.Display())
	}
	if e.Caret() != 6 {
		t.Errorf("Expected caret 6, got %d", e.Caret())
	}

	e.SetCaret(2)
	e.Insert("9")
	if e.Value() != "129345" {
		t.Errorf("Expected 129345, got %q", e.Value())
	}
	if e.Caret() != 3 {
		t.Errorf("Expected caret 3, got %d", e.Caret())
	}
	if len(r.changes) != 6 {
		t.Errorf("Expected 6 changes, got %d", len(r.changes))
	}
}

func TestInsertSeparatorKeepsCaret(t *testing.T) {
	cfg := cardConfig()
	cfg.InitialValue = "1234"
	e := newMask(t, cfg)
	e.CaretEnd()

	e.Insert(" ")
	if e.Value() != "1234" || e.Caret() != 4 {
		t.Errorf("Expected 1234 with caret 4, got %q caret %d", e.Value(), e.Caret())
	}
}

func TestInsertRefusedWhenFull(t *testing.T) {
	cfg := DefaultConfig(2)
	cfg.InitialValue = "12"
	e := newMask(t, cfg)

	if e.Insert("3") {
		t.Error("Expected insert into full field to be refused")
	}
	if e.Insert("") {
		t.Error("Expected empty insert to be refused")
	}
}

func TestDeleteAroundSeparators(t *testing.T) {
	cfg := cardConfig()
	cfg.InitialValue = "12345"

	e := newMask(t, cfg)
	e.SetCaret(5)
	if !e.DeleteBackward() {
		t.Fatal("Expected backward delete")
	}
	if e.Value() != "1235" || e.Caret() != 3 {
		t.Errorf("Expected 1235 caret 3, got %q caret %d", e.Value(), e.Caret())
	}

	e = newMask(t, cfg)
	e.SetCaret(4)
	if !e.DeleteForward() {
		t.Fatal("Expected forward delete")
	}
	if e.Value() != "1234" || e.Caret() != 4 {
		t.Errorf("Expected 1234 caret 4, got %q caret %d", e.Value(), e.Caret())
	}

	e.CaretEnd()
	if e.DeleteForward() {
		t.Error("Expected forward delete at end to do nothing")
	}
	e.SetCaret(0)
	if e.DeleteBackward() {
		t.Error("Expected backward delete at start to do nothing")
	}
}

func TestDeleteRefusedWhenDisabled(t *testing.T) {
	cfg := cardConfig()
	cfg.InitialValue = "12"
	cfg.Disabled = true
	e := newMask(t, cfg)
	e.CaretEnd()

	if e.DeleteBackward() {
		t.Error("Expected disabled field to refuse delete")
	}
	if e.Value() != "12" {
		t.Errorf("Expected value kept, got %q", e.Value())
	}
}

func TestEditsBeforeFrameKeepOrder(t *testing.T) {
	var frame Deferred
	e := newMask(t, Config{NumberOfChars: 8, SeparatorPositions: []int{3}}, WithScheduler(&frame))
	e.OnFocus()
	frame.Flush()

	for _, ch := range []string{"1", "2", "3", "4"} {
		if !e.Insert(ch) {
			t.Fatalf("Insert(%q) refused", ch)
		}
	}
	if e.Caret() != 0 {
		t.Errorf("Expected visible caret unchanged before frame, got %d", e.Caret())
	}
	if e.Value() != "1234" || e.Display() != "123-4" {
		t.Errorf("Expected 1234 / 123-4, got %q / %q", e.Value(), e.Display())
	}

	frame.Flush()
	if e.Caret() != 5 {
		t.Errorf("Expected caret 5 after frame, got %d", e.Caret())
	}
	if frame.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d", frame.Pending())
	}
}

func TestDeleteAndMoveBeforeFrame(t *testing.T) {
	var frame Deferred
	e := newMask(t, Config{NumberOfChars: 8, SeparatorPositions: []int{3}}, WithScheduler(&frame))

	e.Insert("1")
	e.Insert("2")
	e.Insert("3")
	e.Insert("4")
	e.DeleteBackward()
	e.DeleteBackward()
	e.Insert("9")
	frame.Flush()
	if e.Value() != "129" || e.Caret() != 3 {
		t.Errorf("Expected 129 caret 3, got %q caret %d", e.Value(), e.Caret())
	}

	e.Insert("5")
	e.MoveCaret(-1)
	if e.Caret() != 4 {
		t.Errorf("Expected move from the requested caret to land on 4, got %d", e.Caret())
	}
	frame.Flush()
	if e.Caret() != 4 {
		t.Errorf("Expected explicit move to win over the queued placement, got %d", e.Caret())
	}
}
