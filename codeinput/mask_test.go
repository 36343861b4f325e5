package codeinput

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func cardConfig() Config {
	return Config{
		NumberOfChars:      16,
		SeparatorPositions: []int{4, 8, 12},
		SeparatorChar:      " ",
	}
}

func TestFormatDisplay(t *testing.T) {
	seps := NewSeparatorSet([]int{3})
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"12", "12"},
		{"123", "123"}, // trailing boundary hidden
		{"1234", "123-4"},
		{"123456", "123-456"},
	}
	for _, tt := range tests {
		if got := FormatDisplay(tt.in, seps, "-"); got != tt.want {
			t.Errorf("FormatDisplay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractLogicalStripsEverywhere(t *testing.T) {
	if got := ExtractLogical("-12-3--4-", "-"); got != "1234" {
		t.Errorf("Expected 1234, got %q", got)
	}
	if got := ExtractLogical("a·b", "·"); got != "ab" {
		t.Errorf("Expected ab, got %q", got)
	}
}

func TestMaskRoundTrip(t *testing.T) {
	alphabet := []string{"0", "7", "a", "Z", "é", "日", "🇹🇷"}
	seps := NewSeparatorSet([]int{1, 2, 5, 7})
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		n := rng.Intn(9)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		v := b.String()
		if got := ExtractLogical(FormatDisplay(v, seps, "-"), "-"); got != v {
			t.Fatalf("Round trip of %q produced %q", v, got)
		}
	}
}

func TestMaskCardNumberTyping(t *testing.T) {
	var rec recorder
	e := newMask(t, cardConfig(), rec.options()...)

	typeInto(e, "4111111111111111")

	if got := e.Display(); got != "4111 1111 1111 1111" {
		t.Errorf("Expected display with spaces, got %q", got)
	}
	if got := e.Value(); got != "4111111111111111" {
		t.Errorf("Expected logical value without spaces, got %q", got)
	}
	if len(rec.changes) != 16 {
		t.Errorf("Expected 16 onChange calls, got %d", len(rec.changes))
	}
	if diff := cmp.Diff([]string{"4111111111111111"}, rec.completes); diff != "" {
		t.Errorf("onComplete mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskKeyDownSuppressesOverflow(t *testing.T) {
	e := newMask(t, Config{NumberOfChars: 3, InitialValue: "123"})

	if !e.OnKeyDown("4") {
		t.Error("Expected printable key suppressed at capacity")
	}
	if e.OnKeyDown("") {
		t.Error("Non-printable keys must pass through")
	}
	if e.OnKeyDown("\x7f") {
		t.Error("Control characters must pass through")
	}

	e.SetValue("12")
	if e.OnKeyDown("3") {
		t.Error("Expected key accepted below capacity")
	}
}

func TestMaskInputChangedRejectsOverflow(t *testing.T) {
	var rec recorder
	e := newMask(t, Config{NumberOfChars: 4, SeparatorPositions: []int{2}, InitialValue: "1234"}, rec.options()...)

	if e.OnInputChanged("12-345") {
		t.Error("Expected overflowing edit rejected")
	}
	if e.Value() != "1234" || len(rec.changes) != 0 {
		t.Errorf("Rejected edit changed state: %q %v", e.Value(), rec.changes)
	}

	// typing through a rendered separator is fine
	if !e.OnInputChanged("1-2-3") {
		t.Error("Expected edit accepted")
	}
	if e.Value() != "123" {
		t.Errorf("Expected 123, got %q", e.Value())
	}
}

func TestMaskPasteTruncatesDisplayFirst(t *testing.T) {
	tests := []struct {
		name  string
		paste string
		want  string
	}{
		{"plain", "12345678", "123456"},
		{"formatted loses tail", "123-456", "12345"},
		{"short", "12", "12"},
		{"grapheme aware", "日本語テキストです", "日本語テキス"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recorder
			e := newMask(t, Config{NumberOfChars: 6, SeparatorPositions: []int{3}}, rec.options()...)

			e.OnPaste(tt.paste)

			if e.Value() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, e.Value())
			}
			if diff := cmp.Diff([]string{tt.want}, rec.changes); diff != "" {
				t.Errorf("onChange mismatch (-want +got):\n%s", diff)
			}
			wantComplete := GraphemeLen(tt.want) == 6
			if (len(rec.completes) == 1) != wantComplete {
				t.Errorf("Expected completion=%v, got %v", wantComplete, rec.completes)
			}
		})
	}
}

func TestMaskCompletionFiresOnce(t *testing.T) {
	var rec recorder
	e := newMask(t, Config{NumberOfChars: 4}, rec.options()...)

	typeInto(e, "123")
	e.OnInputChanged("1234")
	e.OnInputChanged("1234") // no-op edit
	e.OnPaste("9999")        // still complete
	typeInto(e, "5")         // suppressed

	if diff := cmp.Diff([]string{"1234"}, rec.completes); diff != "" {
		t.Errorf("onComplete mismatch (-want +got):\n%s", diff)
	}

	e.OnInputChanged("999")
	e.OnInputChanged("9998")
	if diff := cmp.Diff([]string{"1234", "9998"}, rec.completes); diff != "" {
		t.Errorf("onComplete after re-entry mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskSetValueIsSilent(t *testing.T) {
	var rec recorder
	e := newMask(t, cardConfig(), rec.options()...)

	e.SetValue("4111 1111 1111 1111 2222")
	if e.Value() != "4111111111111111" {
		t.Errorf("Expected separators stripped then truncated, got %q", e.Value())
	}
	if e.State() != StateComplete {
		t.Errorf("Expected complete state, got %s", e.State())
	}
	if len(rec.changes)+len(rec.completes) != 0 {
		t.Errorf("SetValue fired callbacks: %v %v", rec.changes, rec.completes)
	}
}

func TestMaskCaretDeferredUntilFlush(t *testing.T) {
	var frame Deferred
	var rec recorder
	opts := append(rec.options(), WithScheduler(&frame))
	e := newMask(t, Config{NumberOfChars: 8, SeparatorPositions: []int{4}, InitialValue: "1234"}, opts...)

	e.OnFocus()
	if e.Caret() != 0 {
		t.Errorf("Caret moved before the frame was committed: %d", e.Caret())
	}
	if frame.Pending() != 1 {
		t.Fatalf("Expected one pending request, got %d", frame.Pending())
	}
	frame.Flush()
	// after "1234", not after the trailing boundary
	if e.Caret() != 4 {
		t.Errorf("Expected caret 4, got %d", e.Caret())
	}

	e.OnPaste("12345")
	frame.Flush()
	if e.Caret() != 6 {
		t.Errorf("Expected caret 6 after 1234-5, got %d", e.Caret())
	}
}

func TestMaskClearFocusesEmptyField(t *testing.T) {
	var rec recorder
	e := newMask(t, Config{NumberOfChars: 4, InitialValue: "12"}, rec.options()...)
	e.SetCaret(2)

	e.Clear()

	if e.Value() != "" || e.Display() != "" || e.Caret() != 0 {
		t.Errorf("Clear left value=%q display=%q caret=%d", e.Value(), e.Display(), e.Caret())
	}
	if diff := cmp.Diff([]int{0}, rec.focuses); diff != "" {
		t.Errorf("Expected field focus request (-want +got):\n%s", diff)
	}
	if len(rec.changes) != 0 {
		t.Errorf("Clear must not fire onChange, got %v", rec.changes)
	}
}

func TestMaskOffsets(t *testing.T) {
	e := newMask(t, Config{NumberOfChars: 8, SeparatorPositions: []int{2, 4}, InitialValue: "12345"})
	// display: 12-34-5
	if e.Display() != "12-34-5" {
		t.Fatalf("Unexpected display %q", e.Display())
	}

	offsets := []int{0, 1, 3, 4, 6, 7}
	for i, want := range offsets {
		if got := e.DisplayOffset(i); got != want {
			t.Errorf("DisplayOffset(%d) = %d, want %d", i, got, want)
		}
		if got := e.LogicalIndex(want); got != i {
			t.Errorf("LogicalIndex(%d) = %d, want %d", want, got, i)
		}
	}
	if got := e.LogicalIndex(2); got != 2 {
		t.Errorf("LogicalIndex before a glyph = %d, want 2", got)
	}

	e.SetCaret(99)
	if e.Caret() != 7 {
		t.Errorf("Expected caret clamped to 7, got %d", e.Caret())
	}
	e.MoveCaret(-10)
	if e.Caret() != 0 {
		t.Errorf("Expected caret clamped to 0, got %d", e.Caret())
	}
	if e.MaxDisplayLen() != 10 {
		t.Errorf("Expected max display length 10, got %d", e.MaxDisplayLen())
	}
}

func TestMaskDisabled(t *testing.T) {
	var rec recorder
	e := newMask(t, Config{NumberOfChars: 4, Disabled: true}, rec.options()...)

	if e.OnInputChanged("12") || e.OnPaste("12") {
		t.Error("Disabled engine accepted an edit")
	}
	if !e.OnKeyDown("1") {
		t.Error("Disabled engine must suppress keys")
	}
	e.SetValue("99")
	if e.Value() != "99" || len(rec.changes) != 0 {
		t.Errorf("Expected silent host SetValue while disabled, got %q %v", e.Value(), rec.changes)
	}
}

func TestMaskLengthCeiling(t *testing.T) {
	const n = 6
	e := newMask(t, Config{NumberOfChars: n, SeparatorPositions: []int{2, 4}})
	rng := rand.New(rand.NewSource(11))
	inputs := []string{"", "1", "12-", "1-2-3-4-5-6-7", "abcdefghij", "日本"}

	for step := 0; step < 2000; step++ {
		in := inputs[rng.Intn(len(inputs))]
		switch rng.Intn(4) {
		case 0:
			e.OnInputChanged(e.Display() + in)
		case 1:
			e.OnPaste(in)
		case 2:
			e.SetValue(in)
		case 3:
			typeInto(e, in)
		}
		if got := GraphemeLen(e.Value()); got > n {
			t.Fatalf("Step %d: value %q exceeds %d", step, e.Value(), n)
		}
		if strings.Contains(e.Value(), "-") {
			t.Fatalf("Step %d: logical value %q carries the separator", step, e.Value())
		}
	}
}
