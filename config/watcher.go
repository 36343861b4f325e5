package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors produce per save
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a config file when it changes on disk. The parent
// directory is watched so saves that replace the file are seen.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher

	updates chan *File
	errors  chan error

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher starts watching path; debounce <= 0 uses DefaultDebounce
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := FormatOf(abs); err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fsw:      fsw,
		updates:  make(chan *File, 1),
		errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// Updates delivers each successfully reloaded file; only the latest is kept
func (w *Watcher) Updates() <-chan *File {
	return w.updates
}

// Errors delivers reload failures; only the latest is kept
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		w.wg.Wait()
		err = w.fsw.Close()
	})
	return err
}

// processLoop debounces fsnotify events for the watched file
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			offer(w.errors, err)

		case <-timer.C:
			f, err := Load(w.path)
			if err != nil {
				offer(w.errors, err)
				continue
			}
			offer(w.updates, f)
		}
	}
}

// offer replaces any unread value in a one-slot channel with v
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
