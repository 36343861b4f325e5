package bubble

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lixenwraith/codefield/codeinput"
)

// ChangeMsg reports a committed edit
type ChangeMsg struct {
	ID    string
	Value string
}

// CompleteMsg reports the input becoming complete
type CompleteMsg struct {
	ID    string
	Value string
}

// RejectMsg reports a refused keystroke
type RejectMsg struct {
	ID string
}

// frameMsg drains the model's after-render queue
type frameMsg struct {
	id string
}

// outbox collects engine callbacks raised during one Update
type outbox struct {
	id    string
	frame codeinput.Deferred
	msgs  []tea.Msg
}

func (o *outbox) options() []codeinput.Option {
	return []codeinput.Option{
		codeinput.WithOnChange(func(v string) { o.msgs = append(o.msgs, ChangeMsg{ID: o.id, Value: v}) }),
		codeinput.WithOnComplete(func(v string) { o.msgs = append(o.msgs, CompleteMsg{ID: o.id, Value: v}) }),
		codeinput.WithScheduler(&o.frame),
	}
}

func (o *outbox) reject() {
	o.msgs = append(o.msgs, RejectMsg{ID: o.id})
}

// flush turns pending messages and deferred work into a command, nil when idle
func (o *outbox) flush() tea.Cmd {
	var cmds []tea.Cmd
	for _, m := range o.msgs {
		cmds = append(cmds, emit(m))
	}
	o.msgs = nil
	if o.frame.Pending() > 0 {
		cmds = append(cmds, emit(frameMsg{id: o.id}))
	}
	return tea.Batch(cmds...)
}

// handleFrame runs deferred work when msg targets this model
func (o *outbox) handleFrame(msg tea.Msg) bool {
	fm, ok := msg.(frameMsg)
	if !ok || fm.id != o.id {
		return false
	}
	o.frame.Flush()
	return true
}

func emit(m tea.Msg) tea.Cmd {
	return func() tea.Msg { return m }
}
