package bubble

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lixenwraith/codefield/codeinput"
)

// BoxModel is a bubbletea model rendering one bordered cell per character
type BoxModel struct {
	Styles Styles
	Mask   string // Shown instead of filled content, "" = none
	Gap    int    // Columns between cells and separators

	engine  *codeinput.CellEngine
	out     *outbox
	focused bool
}

// NewBoxModel validates cfg and builds the model; id tags emitted messages
func NewBoxModel(id string, cfg codeinput.Config) (*BoxModel, error) {
	out := &outbox{id: id}
	e, err := codeinput.NewCellEngine(cfg, out.options()...)
	if err != nil {
		return nil, err
	}
	return &BoxModel{Styles: DefaultStyles(), Gap: 1, engine: e, out: out}, nil
}

// Engine returns the underlying engine
func (m *BoxModel) Engine() *codeinput.CellEngine {
	return m.engine
}

// Handle exposes the host control capability
func (m *BoxModel) Handle() codeinput.Handle {
	return m.engine
}

// State reports the completion state of the value
func (m *BoxModel) State() codeinput.State {
	return m.engine.State()
}

// Init focuses cell 0 when the config asks for auto-focus
func (m *BoxModel) Init() tea.Cmd {
	if !m.engine.Config().AutoFocus {
		return nil
	}
	m.focused = true
	m.engine.FocusCell(0)
	return m.out.flush()
}

// Focus gives the model keyboard focus, moving to the first empty cell
func (m *BoxModel) Focus() tea.Cmd {
	m.focused = true
	m.engine.Focus()
	return m.out.flush()
}

// Blur removes keyboard focus
func (m *BoxModel) Blur() {
	m.focused = false
}

// Focused reports whether the model receives keys
func (m *BoxModel) Focused() bool {
	return m.focused
}

// Update applies key messages while focused
func (m *BoxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m *BoxModel) handleKey(key tea.KeyMsg) {
	e := m.engine
	i := e.Focused()
	switch {
	case key.Paste:
		if !e.OnPaste(string(key.Runes)) {
			m.out.reject()
		}
	case key.Type == tea.KeyRunes || key.Type == tea.KeySpace:
		for _, g := range codeinput.Graphemes(keyText(key)) {
			if !e.OnCharacterEntered(e.Focused(), g) {
				m.out.reject()
				return
			}
		}
	case key.Type == tea.KeyBackspace || key.Type == tea.KeyCtrlH:
		if !e.OnBackspace(i) && e.Cell(i) != "" {
			e.OnCharacterEntered(i, "")
		}
	case key.Type == tea.KeyDelete:
		if e.Cell(i) != "" {
			e.OnCharacterEntered(i, "")
		}
	case key.Type == tea.KeyLeft:
		e.OnArrowLeft(i)
	case key.Type == tea.KeyRight:
		e.OnArrowRight(i)
	}
}

// View renders the cells joined with separators
func (m *BoxModel) View() string {
	e := m.engine
	cfg := e.Config()
	st := m.Styles
	placeholder := codeinput.Graphemes(cfg.Placeholder)
	complete := e.State() == codeinput.StateComplete
	gap := strings.Repeat(" ", max(0, m.Gap))

	parts := make([]string, 0, 2*e.Len()+2*e.Separators().Len())
	for i := 0; i < e.Len(); i++ {
		if i > 0 && m.Gap > 0 {
			parts = append(parts, gap)
		}
		content, text := e.Cell(i), st.Text
		switch {
		case content == "":
			content, text = " ", st.Hint
			if len(placeholder) == e.Len() {
				content = placeholder[i]
			} else if len(placeholder) > 0 {
				content = placeholder[0]
			}
		case m.Mask != "":
			content = m.Mask
		}
		frame := st.frameFor(cfg.Disabled, m.focused && i == e.Focused(), complete)
		parts = append(parts, frame.Render(text.Render(content)))

		if e.SeparatorAfter(i) {
			if m.Gap > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, st.Separator.Render(cfg.Separator()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// keyText returns the text a printable key inserts
func keyText(key tea.KeyMsg) string {
	if key.Type == tea.KeySpace && len(key.Runes) == 0 {
		return " "
	}
	return string(key.Runes)
}
