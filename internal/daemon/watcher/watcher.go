// Package watcher reloads settings.yaml when it changes on disk.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/redshiftbar/redshiftbar/internal/config"
	"github.com/redshiftbar/redshiftbar/internal/models"
)

// DefaultDebounce collapses bursts of writes from editors into one reload.
const DefaultDebounce = 100 * time.Millisecond

// Event carries the outcome of one settings reload.
type Event struct {
	Path     string
	Settings *models.Settings // nil when Err is set
	Err      error
}

// Watcher watches the settings file's directory.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	debounce   time.Duration
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once

	timerMu sync.Mutex
	timer   *time.Timer
}

// New creates a watcher for the settings file at path.
func New(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		path:       filepath.Clean(path),
		debounce:   DefaultDebounce,
		eventsChan: make(chan Event, 8),
		done:       make(chan struct{}),
	}, nil
}

// Events returns the channel for receiving reload events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts the watcher.
func (w *Watcher) Start() error {
	// The directory is watched rather than the file: atomic saves replace
	// the file, which drops a watch held on the old inode.
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents()

	log.Printf("[watcher] Watching %s", w.path)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.timerMu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.timerMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[watcher] error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Rename covers atomic writes (write tmp, rename onto target).
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	if !config.FileExists(w.path) {
		return
	}

	settings, err := config.LoadSettingsFile(w.path)
	if err != nil {
		log.Printf("[watcher] Ignoring settings change: %v", err)
	} else {
		log.Printf("[watcher] Reloaded %s", w.path)
	}

	select {
	case w.eventsChan <- Event{Path: w.path, Settings: settings, Err: err}:
	case <-w.done:
	}
}
