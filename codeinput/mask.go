package codeinput

// MaskEngine drives a line-style input: one logical value rendered with
// separator glyphs interleaved at fixed boundaries. The caret is tracked in
// display graphemes; a caret requested for the next frame is kept as a
// logical index so edits made before that frame splice at the right place.
type MaskEngine struct {
	cfg     Config
	seps    SeparatorSet
	value   []string
	caret   int
	pending int // Logical index awaiting the next frame, -1 = none
	track   tracker
	opts    options
}

// NewMaskEngine validates cfg and returns an engine holding cfg.InitialValue
func NewMaskEngine(cfg Config, opts ...Option) (*MaskEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalize()
	e := &MaskEngine{
		cfg:  cfg,
		seps:    NewSeparatorSet(cfg.SeparatorPositions),
		pending: -1,
		opts:    buildOptions(opts),
	}
	e.SetValue(cfg.InitialValue)
	return e, nil
}

// Config returns the engine configuration
func (e *MaskEngine) Config() Config {
	return e.cfg
}

// Separators returns the configured separator set
func (e *MaskEngine) Separators() SeparatorSet {
	return e.seps
}

// --- Formatting ---

// FormatDisplay inserts sep before every logical index in seps. The result is
// only invertible with ExtractLogical when v never contains sep.
func FormatDisplay(v string, seps SeparatorSet, sep string) string {
	g := Graphemes(v)
	out := make([]string, 0, len(g)+seps.Len())
	for i, ch := range g {
		if seps.Before(i) {
			out = append(out, sep)
		}
		out = append(out, ch)
	}
	return join(out)
}

// ExtractLogical drops every grapheme equal to sep, wherever it appears
func ExtractLogical(display, sep string) string {
	return join(stripSeparators(Graphemes(display), sep))
}

func stripSeparators(g []string, sep string) []string {
	out := g[:0]
	for _, ch := range g {
		if ch != sep {
			out = append(out, ch)
		}
	}
	return out
}

// ComputeDisplay formats v with this engine's separators
func (e *MaskEngine) ComputeDisplay(v string) string {
	return FormatDisplay(v, e.seps, e.cfg.SeparatorChar)
}

// ExtractLogical strips this engine's separator glyph from display
func (e *MaskEngine) ExtractLogical(display string) string {
	return ExtractLogical(display, e.cfg.SeparatorChar)
}

// --- Value access ---

// Value returns the logical value
func (e *MaskEngine) Value() string {
	return join(e.value)
}

// Display returns the decorated value, recomputed on every call
func (e *MaskEngine) Display() string {
	return e.ComputeDisplay(e.Value())
}

// Len returns the logical length in graphemes
func (e *MaskEngine) Len() int {
	return len(e.value)
}

// MaxDisplayLen bounds the display length, NumberOfChars plus every separator
func (e *MaskEngine) MaxDisplayLen() int {
	return e.cfg.NumberOfChars + e.seps.Len()
}

// State classifies the logical length
func (e *MaskEngine) State() State {
	return stateFor(len(e.value), e.cfg.NumberOfChars)
}

// SetValue replaces the logical value without callbacks. Separator glyphs are
// stripped before truncation so the logical value never carries them.
func (e *MaskEngine) SetValue(v string) {
	g := stripSeparators(Graphemes(v), e.cfg.SeparatorChar)
	if len(g) > e.cfg.NumberOfChars {
		g = g[:e.cfg.NumberOfChars]
	}
	e.value = g
	e.track.reset(e.State())
	e.caret = min(e.caret, e.displayLen())
}

// Clear empties the value and focuses the field, without callbacks
func (e *MaskEngine) Clear() {
	e.value = nil
	e.track.reset(StateEmpty)
	e.caret = 0
	e.pending = -1
	e.Focus()
}

// Focus focuses the field; the caret lands at the end of the value after the next frame
func (e *MaskEngine) Focus() {
	e.opts.focus(0)
	e.OnFocus()
}

// --- Event handlers ---

// OnInputChanged commits the logical value extracted from raw display text.
// Edits whose extracted length exceeds NumberOfChars are rejected unchanged.
func (e *MaskEngine) OnInputChanged(raw string) bool {
	if e.cfg.Disabled {
		return false
	}
	g := stripSeparators(Graphemes(raw), e.cfg.SeparatorChar)
	if len(g) > e.cfg.NumberOfChars {
		return false
	}
	e.commit(g)
	return true
}

// OnKeyDown reports whether a keystroke inserting input must be suppressed
// because the value is already full or the field is disabled
func (e *MaskEngine) OnKeyDown(input string) bool {
	if e.cfg.Disabled {
		return true
	}
	return IsPrintable(input) && len(e.value) >= e.cfg.NumberOfChars
}

// OnPaste truncates raw to NumberOfChars display graphemes, strips separators
// and commits the result. Separators inside the payload therefore cost
// logical characters to truncation.
func (e *MaskEngine) OnPaste(raw string) bool {
	if e.cfg.Disabled {
		return false
	}
	g := stripSeparators(truncateGraphemes(raw, e.cfg.NumberOfChars), e.cfg.SeparatorChar)
	e.commit(g)
	e.PlaceCaret(len(g))
	return true
}

// OnFocus requests the caret after the last real character, ignoring trailing separators
func (e *MaskEngine) OnFocus() {
	e.PlaceCaret(len(e.value))
}

// --- Caret ---

// Caret returns the caret position in display graphemes
func (e *MaskEngine) Caret() int {
	return e.caret
}

// SetCaret moves the caret to a display offset, clamped to the display.
// It replaces any placement still waiting for the next frame.
func (e *MaskEngine) SetCaret(offset int) {
	e.pending = -1
	e.caret = max(0, min(offset, e.displayLen()))
}

// MoveCaret shifts the caret by delta display graphemes
func (e *MaskEngine) MoveCaret(delta int) {
	e.SetCaret(e.editCaret() + delta)
}

// PlaceCaret requests the caret before logical index i once the next frame is
// committed. Until then edits treat i as the insertion point.
func (e *MaskEngine) PlaceCaret(i int) {
	e.pending = i
	e.opts.scheduler.AfterRender(e.applyPending)
}

func (e *MaskEngine) applyPending() {
	if e.pending < 0 {
		return
	}
	e.caret = e.DisplayOffset(e.pending)
	e.pending = -1
}

// editCaret returns the display offset the next edit applies at
func (e *MaskEngine) editCaret() int {
	if e.pending >= 0 {
		return e.DisplayOffset(e.pending)
	}
	return min(e.caret, e.displayLen())
}

// DisplayOffset maps logical index i to its display offset, after any separator preceding it
func (e *MaskEngine) DisplayOffset(i int) int {
	i = max(0, min(i, len(e.value)))
	return i + e.seps.Rendered(i, len(e.value))
}

// LogicalIndex maps a display offset to the number of logical graphemes before it
func (e *MaskEngine) LogicalIndex(offset int) int {
	g := Graphemes(e.Display())
	offset = max(0, min(offset, len(g)))
	n := 0
	for _, ch := range g[:offset] {
		if ch != e.cfg.SeparatorChar {
			n++
		}
	}
	return n
}

// AutoWidth sizes the field for NumberOfChars characters and every separator
func (e *MaskEngine) AutoWidth(m WidthMetrics) float64 {
	return AutoWidth(e.cfg.NumberOfChars, e.seps.Len(), m)
}

// --- Internals ---

func (e *MaskEngine) commit(g []string) {
	e.value = g
	e.caret = min(e.caret, e.displayLen())
	v := e.Value()
	e.opts.change(v)
	if e.track.advance(e.State()) {
		e.opts.complete(v)
	}
}

func (e *MaskEngine) displayLen() int {
	return len(e.value) + e.seps.Rendered(len(e.value), len(e.value))
}
