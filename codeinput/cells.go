package codeinput

// CellEngine drives a box-style input: NumberOfChars single-grapheme cells
// with a focus cursor that advances on input and retreats on backspace.
type CellEngine struct {
	cfg   Config
	seps  SeparatorSet
	cells []string
	focus int
	track tracker
	opts  options
}

// NewCellEngine validates cfg and returns an engine holding cfg.InitialValue
func NewCellEngine(cfg Config, opts ...Option) (*CellEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalize()
	e := &CellEngine{
		cfg:   cfg,
		seps:  NewSeparatorSet(cfg.SeparatorPositions),
		cells: make([]string, cfg.NumberOfChars),
		opts:  buildOptions(opts),
	}
	e.fill(cfg.InitialValue)
	return e, nil
}

// Config returns the engine configuration
func (e *CellEngine) Config() Config {
	return e.cfg
}

// Separators returns the configured separator set
func (e *CellEngine) Separators() SeparatorSet {
	return e.seps
}

// --- Value access ---

// Value returns the concatenated cells
func (e *CellEngine) Value() string {
	return join(e.cells)
}

// SetValue rewrites cells from v, truncated or padded to NumberOfChars, without callbacks
func (e *CellEngine) SetValue(v string) {
	e.fill(v)
}

// Clear empties every cell and focuses cell 0, without callbacks
func (e *CellEngine) Clear() {
	for i := range e.cells {
		e.cells[i] = ""
	}
	e.track.reset(StateEmpty)
	e.moveFocus(0)
}

// Focus moves focus to the first empty cell, or cell 0 when all are filled
func (e *CellEngine) Focus() {
	target := 0
	for i, c := range e.cells {
		if c == "" {
			target = i
			break
		}
	}
	e.moveFocus(target)
}

// Cells returns a copy of the cell contents
func (e *CellEngine) Cells() []string {
	return append([]string(nil), e.cells...)
}

// Cell returns the content of cell i, "" when empty or out of range
func (e *CellEngine) Cell(i int) string {
	if i < 0 || i >= len(e.cells) {
		return ""
	}
	return e.cells[i]
}

// Len returns the number of cells
func (e *CellEngine) Len() int {
	return len(e.cells)
}

// Focused returns the focus cursor
func (e *CellEngine) Focused() int {
	return e.focus
}

// FocusCell moves focus to cell i, clamped to the cell range
func (e *CellEngine) FocusCell(i int) {
	e.moveFocus(e.clamp(i))
}

// SeparatorAfter reports whether a separator glyph is drawn after cell i
func (e *CellEngine) SeparatorAfter(i int) bool {
	return e.seps.After(i)
}

// State classifies the cells; complete means no cell is empty
func (e *CellEngine) State() State {
	filled := 0
	for _, c := range e.cells {
		if c != "" {
			filled++
		}
	}
	return stateFor(filled, len(e.cells))
}

// --- Event handlers ---

// OnCharacterEntered replaces cell index with the first grapheme of input.
// Empty input clears the cell. Returns false when the event was ignored.
func (e *CellEngine) OnCharacterEntered(index int, input string) bool {
	if e.cfg.Disabled || !e.valid(index) {
		return false
	}
	ch := firstGrapheme(input)
	e.cells[index] = ch
	if ch != "" && index < len(e.cells)-1 {
		e.moveFocus(index + 1)
	}
	e.commit()
	return true
}

// OnBackspace moves focus to index-1 when cell index is already empty.
// It never clears the previous cell. Returns true when focus moved.
func (e *CellEngine) OnBackspace(index int) bool {
	if e.cfg.Disabled || !e.valid(index) {
		return false
	}
	if e.cells[index] == "" && index > 0 {
		e.moveFocus(index - 1)
		return true
	}
	return false
}

// OnArrowLeft moves focus one cell left, clamped. Returns true when the key was consumed.
func (e *CellEngine) OnArrowLeft(index int) bool {
	if e.cfg.Disabled || !e.valid(index) {
		return false
	}
	e.moveFocus(e.clamp(index - 1))
	return true
}

// OnArrowRight moves focus one cell right, clamped. Returns true when the key was consumed.
func (e *CellEngine) OnArrowRight(index int) bool {
	if e.cfg.Disabled || !e.valid(index) {
		return false
	}
	e.moveFocus(e.clamp(index + 1))
	return true
}

// OnPaste overwrites cells from index 0 with the first NumberOfChars graphemes
// of raw, clearing the rest, then focuses the cell after the last filled one.
func (e *CellEngine) OnPaste(raw string) bool {
	if e.cfg.Disabled {
		return false
	}
	pasted := truncateGraphemes(raw, len(e.cells))
	last := -1
	for i := range e.cells {
		e.cells[i] = ""
		if i < len(pasted) {
			e.cells[i] = pasted[i]
		}
		if e.cells[i] != "" {
			last = i
		}
	}
	e.commit()
	e.moveFocus(min(last+1, len(e.cells)-1))
	return true
}

// --- Internals ---

func (e *CellEngine) fill(v string) {
	g := truncateGraphemes(v, len(e.cells))
	for i := range e.cells {
		e.cells[i] = ""
		if i < len(g) {
			e.cells[i] = g[i]
		}
	}
	e.track.reset(e.State())
}

func (e *CellEngine) commit() {
	v := e.Value()
	e.opts.change(v)
	if e.track.advance(e.State()) {
		e.opts.complete(v)
	}
}

func (e *CellEngine) moveFocus(i int) {
	e.focus = i
	e.opts.focus(i)
}

func (e *CellEngine) valid(i int) bool {
	return i >= 0 && i < len(e.cells)
}

func (e *CellEngine) clamp(i int) int {
	return max(0, min(i, len(e.cells)-1))
}
