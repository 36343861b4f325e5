package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codefield/audio"
	"github.com/lixenwraith/codefield/codeinput"
	"github.com/lixenwraith/codefield/config"
	"github.com/lixenwraith/codefield/tui"
)

const footer = "tab/↑↓ move · enter submit · ctrl+u clear · ctrl+t mute · esc quit"

type namedValue struct {
	name  string
	value string
}

// app binds a form built from a config file to a screen
type app struct {
	screen tcell.Screen
	player *audio.Player
	form   *tui.Form
	names  []string

	updates <-chan *config.File
	errs    <-chan error
}

func newApp(screen tcell.Screen, player *audio.Player) *app {
	return &app{screen: screen, player: player}
}

func (a *app) watch(w *config.Watcher) {
	a.updates = w.Updates()
	a.errs = w.Errors()
}

// load builds the form from f, carrying over values of fields that keep their name
func (a *app) load(f *config.File) error {
	theme, err := f.Theme.Tui()
	if err != nil {
		return err
	}

	prev := make(map[string]string)
	focusName := ""
	if a.form != nil {
		for i, ff := range a.form.Fields {
			prev[a.names[i]] = ff.Field.Handle().Value()
		}
		if a.form.Focus < len(a.names) {
			focusName = a.names[a.form.Focus]
		}
	}

	form := tui.NewForm(nil)
	form.Opts.Theme = theme
	form.Opts.Title = f.Title
	form.Opts.Footer = footer
	names := make([]string, 0, len(f.Fields))

	for i := range f.Fields {
		fd := &f.Fields[i]
		name := fd.Name
		field, err := fd.Build(theme,
			codeinput.WithScheduler(form.Frame()),
			codeinput.WithOnChange(func(v string) {
				log.Printf("field %s changed: %q", name, v)
			}),
			codeinput.WithOnComplete(func(v string) {
				log.Printf("field %s complete: %q", name, v)
				a.player.PlayComplete()
			}),
		)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		field.OnReject(func() { a.player.PlayReject() })
		if v := prev[name]; v != "" {
			field.Handle().SetValue(v)
		}
		form.Add(fd.Title(), field)
		names = append(names, name)
	}

	form.Mount()
	for i, n := range names {
		if n == focusName {
			form.FocusField(i)
		}
	}

	a.form = form
	a.names = names
	return nil
}

// run processes events until submit or quit
func (a *app) run() ([]namedValue, error) {
	eventCh := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-quit:
				return
			}
		}
	}()

	a.form.Render(a.screen)
	for {
		select {
		case ev := <-eventCh:
			done, err := a.handle(ev)
			if err != nil || done {
				if err != nil {
					return nil, err
				}
				return a.values(), nil
			}

		case f := <-a.updates:
			log.Printf("config reloaded: %d fields", len(f.Fields))
			if err := a.load(f); err != nil {
				log.Printf("config reload rejected: %v", err)
			}

		case err := <-a.errs:
			log.Printf("config reload failed: %v", err)
		}
		a.form.Render(a.screen)
	}
}

// handle applies one event and reports whether the form was submitted
func (a *app) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		return false, nil
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false, errCanceled
		case tcell.KeyEnter:
			if i := a.form.Incomplete(); i >= 0 {
				a.form.FocusField(i)
				a.player.PlayReject()
				return false, nil
			}
			return true, nil
		case tcell.KeyCtrlU:
			if field := a.form.Active(); field != nil {
				field.Handle().Clear()
				a.player.PlayClear()
			}
			return false, nil
		case tcell.KeyCtrlT:
			log.Printf("audio muted: %v", a.player.ToggleMute())
			return false, nil
		}
	}
	a.form.HandleEvent(ev)
	return false, nil
}

func (a *app) values() []namedValue {
	out := make([]namedValue, len(a.names))
	for i, ff := range a.form.Fields {
		out[i] = namedValue{name: a.names[i], value: ff.Field.Handle().Value()}
	}
	return out
}
