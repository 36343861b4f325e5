package codeinput

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeferredRunsInOrder(t *testing.T) {
	var d Deferred
	var got []int

	d.AfterRender(func() { got = append(got, 1) })
	d.AfterRender(nil)
	d.AfterRender(func() {
		got = append(got, 2)
		d.AfterRender(func() { got = append(got, 3) })
	})

	if d.Pending() != 2 {
		t.Fatalf("Expected 2 pending callbacks, got %d", d.Pending())
	}
	if n := d.Flush(); n != 2 {
		t.Errorf("Expected 2 callbacks run, got %d", n)
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("First flush mismatch (-want +got):\n%s", diff)
	}

	// requeued work waits for the next frame
	d.Flush()
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("Second flush mismatch (-want +got):\n%s", diff)
	}
	if d.Flush() != 0 {
		t.Error("Expected empty queue")
	}
}

// Both engines satisfy Handle with identical silent semantics
func TestHandleContract(t *testing.T) {
	build := map[string]func(*recorder) Handle{
		"cells": func(r *recorder) Handle { return newCells(t, Config{NumberOfChars: 4}, r.options()...) },
		"mask":  func(r *recorder) Handle { return newMask(t, Config{NumberOfChars: 4}, r.options()...) },
	}

	for name, fn := range build {
		t.Run(name, func(t *testing.T) {
			var rec recorder
			h := fn(&rec)

			h.SetValue("123456")
			if h.Value() != "1234" {
				t.Errorf("Expected 1234, got %q", h.Value())
			}
			h.Focus()
			h.Clear()
			if h.Value() != "" {
				t.Errorf("Expected empty value after Clear, got %q", h.Value())
			}
			if len(rec.changes)+len(rec.completes) != 0 {
				t.Errorf("Handle fired callbacks: %v %v", rec.changes, rec.completes)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateEmpty:    "empty",
		StatePartial:  "partial",
		StateComplete: "complete",
		State(9):      "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}

func TestTrackerTransitions(t *testing.T) {
	var tr tracker
	steps := []struct {
		next State
		want bool
	}{
		{StatePartial, false},
		{StateComplete, true},
		{StateComplete, false},
		{StatePartial, false},
		{StateComplete, true},
	}
	for i, s := range steps {
		if got := tr.advance(s.next); got != s.want {
			t.Errorf("Step %d: advance(%s) = %v, want %v", i, s.next, got, s.want)
		}
	}
	tr.reset(StateEmpty)
	if !tr.advance(StateComplete) {
		t.Error("Expected transition after reset")
	}
}
