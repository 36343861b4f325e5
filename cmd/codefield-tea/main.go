// Command codefield-tea hosts the code inputs inside a bubbletea program
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lixenwraith/codefield/audio"
	"github.com/lixenwraith/codefield/bubble"
	"github.com/lixenwraith/codefield/codeinput"
	"github.com/lixenwraith/codefield/config"
)

// input is the surface shared by bubble.BoxModel and bubble.LineModel
type input interface {
	tea.Model
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Handle() codeinput.Handle
	State() codeinput.State
}

type row struct {
	name  string
	label string
	input input
	state codeinput.State
}

type model struct {
	title     string
	rows      []row
	focus     int
	player    *audio.Player
	submitted bool
	status    string

	labelStyle lipgloss.Style
	hintStyle  lipgloss.Style
	titleStyle lipgloss.Style
}

func newModel(f *config.File, player *audio.Player) (*model, error) {
	m := &model{
		title:      f.Title,
		player:     player,
		labelStyle: lipgloss.NewStyle().Bold(true).Width(labelWidth(f) + 2),
		hintStyle:  lipgloss.NewStyle().Faint(true),
		titleStyle: lipgloss.NewStyle().Bold(true).MarginBottom(1),
	}

	for i := range f.Fields {
		fd := &f.Fields[i]
		in, err := buildInput(fd, f.Theme)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}
		if fd.AutoFocus {
			m.focus = i
		}
		m.rows = append(m.rows, row{name: fd.Name, label: fd.Title(), input: in})
	}
	m.refresh()
	return m, nil
}

func buildInput(fd *config.Field, theme config.Theme) (input, error) {
	styles := themed(themed(bubble.DefaultStyles(), theme), fd.Style.Colors)
	switch fd.Kind {
	case config.KindLine:
		lm, err := bubble.NewLineModel(fd.Name, fd.Config())
		if err != nil {
			return nil, err
		}
		lm.Styles, lm.Mask, lm.Width = styles, fd.Mask, fd.Style.Width
		if fd.Style.LetterSpacing != nil {
			lm.LetterSpacing = *fd.Style.LetterSpacing
		}
		return lm, nil
	default:
		bm, err := bubble.NewBoxModel(fd.Name, fd.Config())
		if err != nil {
			return nil, err
		}
		bm.Styles, bm.Mask = styles, fd.Mask
		if fd.Style.Gap != nil {
			bm.Gap = *fd.Style.Gap
		}
		return bm, nil
	}
}

// themed applies configured colors; empty entries keep the defaults
func themed(s bubble.Styles, t config.Theme) bubble.Styles {
	border := func(st lipgloss.Style, c string) lipgloss.Style {
		if c == "" {
			return st
		}
		return st.BorderForeground(lipgloss.Color(c))
	}
	fg := func(st lipgloss.Style, c string) lipgloss.Style {
		if c == "" {
			return st
		}
		return st.Foreground(lipgloss.Color(c))
	}
	s.Frame = border(s.Frame, t.Border)
	s.Focused = border(s.Focused, t.Focus)
	s.Complete = border(s.Complete, t.Complete)
	s.Disabled = border(s.Disabled, t.Disabled)
	if t.Bg != "" {
		s.Text = s.Text.Background(lipgloss.Color(t.Bg))
	}
	s.Text = fg(s.Text, t.Fg)
	s.Separator = fg(s.Separator, t.Separator)
	s.Hint = fg(s.Hint, t.Placeholder)
	return s
}

func labelWidth(f *config.File) int {
	w := 0
	for i := range f.Fields {
		w = max(w, lipgloss.Width(f.Fields[i].Title()))
	}
	return w
}

func (m *model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.rows)+1)
	for i := range m.rows {
		cmds = append(cmds, m.rows[i].input.Init())
	}
	for i := range m.rows {
		if i != m.focus {
			m.rows[i].input.Blur()
		}
	}
	if len(m.rows) > 0 {
		cmds = append(cmds, m.rows[m.focus].input.Focus())
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			return m, m.move(1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.move(-1)
		case tea.KeyCtrlU:
			m.rows[m.focus].input.Handle().Clear()
			m.player.PlayClear()
			return m, m.rows[m.focus].input.Focus()
		case tea.KeyCtrlT:
			if m.player.ToggleMute() {
				m.status = "muted"
			} else {
				m.status = ""
			}
			return m, nil
		case tea.KeyEnter:
			for i := range m.rows {
				if m.rows[i].input.State() != codeinput.StateComplete {
					m.player.PlayReject()
					return m, m.focusRow(i)
				}
			}
			m.submitted = true
			return m, tea.Quit
		}
		_, cmd := m.rows[m.focus].input.Update(msg)
		return m, cmd

	case bubble.ChangeMsg:
		log.Printf("field %s changed: %q", msg.ID, msg.Value)
		m.refresh()
		return m, nil

	case bubble.CompleteMsg:
		log.Printf("field %s complete: %q", msg.ID, msg.Value)
		m.player.PlayComplete()
		m.refresh()
		return m, nil

	case bubble.RejectMsg:
		m.player.PlayReject()
		return m, nil
	}

	// Frame messages go to every input; each ignores frames it did not request
	cmds := make([]tea.Cmd, 0, len(m.rows))
	for i := range m.rows {
		_, cmd := m.rows[i].input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *model) refresh() {
	for i := range m.rows {
		m.rows[i].state = m.rows[i].input.State()
	}
}

func (m *model) move(delta int) tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	return m.focusRow((m.focus + delta + len(m.rows)) % len(m.rows))
}

func (m *model) focusRow(i int) tea.Cmd {
	m.rows[m.focus].input.Blur()
	m.focus = i
	return m.rows[i].input.Focus()
}

func (m *model) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.titleStyle.Render(m.title))
		b.WriteByte('\n')
	}
	for i := range m.rows {
		r := &m.rows[i]
		view := r.input.View()
		label := m.labelStyle.Height(lipgloss.Height(view)).
			AlignVertical(lipgloss.Center).Render(r.label)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, view))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", lipgloss.Width(label)))
		b.WriteString(m.hintStyle.Render(r.state.String()))
		b.WriteString("\n\n")
	}
	help := "tab/↑↓ move · enter submit · ctrl+u clear · ctrl+t mute · esc quit"
	if m.status != "" {
		help += " · " + m.status
	}
	b.WriteString(m.hintStyle.Render(help))
	return b.String()
}

func main() {
	configPath := flag.String("config", "", "Form definition file; built-in demo when empty")
	debug := flag.Bool("debug", false, "Write logs to codefield-tea.log")
	mute := flag.Bool("mute", false, "Disable audio feedback")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("codefield-tea.log", "codefield")
		if err != nil {
			fmt.Fprintf(os.Stderr, "codefield-tea: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	file := config.Default()
	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "codefield-tea: %v\n", err)
			os.Exit(2)
		}
		file = f
	}

	audioCfg := audio.LoadAudioConfig()
	if *mute {
		audioCfg.Enabled = false
	}
	player := audio.NewPlayer(audioCfg)
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Cleanup()

	m, err := newModel(file, player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "codefield-tea: %v\n", err)
		os.Exit(2)
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "codefield-tea: %v\n", err)
		os.Exit(1)
	}
	done := final.(*model)
	if !done.submitted {
		os.Exit(130)
	}
	for _, r := range done.rows {
		fmt.Printf("%s=%s\n", r.name, r.input.Handle().Value())
	}
}
