package codeinput

// --- Native field emulation ---

// Insert splices s into the display at the caret the way a native text field
// would, routes the keystroke through OnKeyDown and the resulting text through
// OnInputChanged, then places the caret after the inserted characters.
// Returns false when the keystroke was suppressed or the edit rejected.
func (e *MaskEngine) Insert(s string) bool {
	if s == "" || e.OnKeyDown(s) {
		return false
	}
	disp := Graphemes(e.Display())
	c := min(e.editCaret(), len(disp))
	idx := e.LogicalIndex(c)
	if !e.OnInputChanged(join(disp[:c]) + s + join(disp[c:])) {
		return false
	}
	e.PlaceCaret(idx + len(stripSeparators(Graphemes(s), e.cfg.SeparatorChar)))
	return true
}

// DeleteBackward removes the nearest logical character left of the caret,
// stepping over separator glyphs
func (e *MaskEngine) DeleteBackward() bool {
	disp := Graphemes(e.Display())
	j := min(e.editCaret(), len(disp)) - 1
	for j >= 0 && disp[j] == e.cfg.SeparatorChar {
		j--
	}
	if j < 0 {
		return false
	}
	return e.removeAt(disp, j)
}

// DeleteForward removes the nearest logical character at or right of the caret
func (e *MaskEngine) DeleteForward() bool {
	disp := Graphemes(e.Display())
	j := min(e.editCaret(), len(disp))
	for j < len(disp) && disp[j] == e.cfg.SeparatorChar {
		j++
	}
	if j >= len(disp) {
		return false
	}
	return e.removeAt(disp, j)
}

// CaretEnd moves the caret after the last logical character
func (e *MaskEngine) CaretEnd() {
	e.SetCaret(e.DisplayOffset(len(e.value)))
}

func (e *MaskEngine) removeAt(disp []string, j int) bool {
	idx := e.LogicalIndex(j)
	if !e.OnInputChanged(join(disp[:j]) + join(disp[j+1:])) {
		return false
	}
	e.PlaceCaret(idx)
	return true
}
