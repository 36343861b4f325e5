package bubble

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lixenwraith/codefield/codeinput"
)

// LineModel is a bubbletea model rendering the masked value on one line
type LineModel struct {
	Styles        Styles
	Mask          string // Shown instead of logical characters, "" = none
	LetterSpacing int
	Width         int // Inner width including padding, 0 = auto-size

	engine  *codeinput.MaskEngine
	out     *outbox
	focused bool
}

// NewLineModel validates cfg and builds the model; id tags emitted messages
func NewLineModel(id string, cfg codeinput.Config) (*LineModel, error) {
	out := &outbox{id: id}
	e, err := codeinput.NewMaskEngine(cfg, out.options()...)
	if err != nil {
		return nil, err
	}
	return &LineModel{Styles: DefaultStyles(), LetterSpacing: 1, engine: e, out: out}, nil
}

// Engine returns the underlying engine
func (m *LineModel) Engine() *codeinput.MaskEngine {
	return m.engine
}

// Handle exposes the host control capability
func (m *LineModel) Handle() codeinput.Handle {
	return m.engine
}

// State reports the completion state of the value
func (m *LineModel) State() codeinput.State {
	return m.engine.State()
}

// Init requests the caret at the end of the value when auto-focus is set
func (m *LineModel) Init() tea.Cmd {
	if !m.engine.Config().AutoFocus {
		return nil
	}
	m.focused = true
	m.engine.OnFocus()
	return m.out.flush()
}

// Focus gives the model keyboard focus; the caret moves after the next frame
func (m *LineModel) Focus() tea.Cmd {
	m.focused = true
	m.engine.Focus()
	return m.out.flush()
}

// Blur removes keyboard focus
func (m *LineModel) Blur() {
	m.focused = false
}

// Focused reports whether the model receives keys
func (m *LineModel) Focused() bool {
	return m.focused
}

// Update applies key messages while focused
func (m *LineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.out.handleFrame(msg) {
		return m, m.out.flush()
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}
	m.handleKey(key)
	return m, m.out.flush()
}

func (m *LineModel) handleKey(key tea.KeyMsg) {
	e := m.engine
	switch {
	case key.Paste:
		if !e.OnPaste(string(key.Runes)) {
			m.out.reject()
		}
	case key.Type == tea.KeyRunes || key.Type == tea.KeySpace:
		for _, g := range codeinput.Graphemes(keyText(key)) {
			if !e.Insert(g) {
				m.out.reject()
				return
			}
		}
	case key.Type == tea.KeyBackspace || key.Type == tea.KeyCtrlH:
		e.DeleteBackward()
	case key.Type == tea.KeyDelete:
		e.DeleteForward()
	case key.Type == tea.KeyLeft:
		e.MoveCaret(-1)
	case key.Type == tea.KeyRight:
		e.MoveCaret(1)
	case key.Type == tea.KeyHome || key.Type == tea.KeyCtrlA:
		e.SetCaret(0)
	case key.Type == tea.KeyEnd || key.Type == tea.KeyCtrlE:
		e.CaretEnd()
	}
}

// View renders the display value inside the frame
func (m *LineModel) View() string {
	e := m.engine
	cfg := e.Config()
	st := m.Styles
	sep := cfg.Separator()
	glyphs := codeinput.Graphemes(e.Display())
	showCaret := m.focused && !cfg.Disabled

	parts := make([]string, 0, len(glyphs)+1)
	for i, g := range glyphs {
		text := st.Text
		switch {
		case g == sep:
			text = st.Separator
		case m.Mask != "":
			g = m.Mask
		}
		if showCaret && i == e.Caret() {
			text = st.Cursor
		}
		parts = append(parts, text.Render(g))
	}
	if showCaret && e.Caret() >= len(glyphs) {
		parts = append(parts, st.Cursor.Render(" "))
	}
	if len(glyphs) == 0 && cfg.Placeholder != "" && !showCaret {
		for _, g := range codeinput.Graphemes(cfg.Placeholder) {
			parts = append(parts, st.Hint.Render(g))
		}
	}

	frame := st.frameFor(cfg.Disabled, m.focused, e.State() == codeinput.StateComplete)
	return frame.Width(m.innerWidth(frame.GetHorizontalPadding())).
		Render(strings.Join(parts, strings.Repeat(" ", max(0, m.LetterSpacing))))
}

// innerWidth sizes the frame for NumberOfChars characters, every separator and the caret
func (m *LineModel) innerWidth(padding int) int {
	if m.Width > 0 {
		return m.Width
	}
	cfg := m.engine.Config()
	sample := m.engine.Value() + cfg.Placeholder + m.Mask
	metrics := codeinput.CellMetrics(sample, cfg.Separator(), m.LetterSpacing, padding/2, padding-padding/2)
	return int(math.Ceil(m.engine.AutoWidth(metrics))) + 1 + m.LetterSpacing
}
