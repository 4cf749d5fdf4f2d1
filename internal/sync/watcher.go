package sync

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/datebook/datebook/internal/config"
	"github.com/datebook/datebook/internal/logger"
)

// SettingsChangedEvent notifies listeners that the settings file changed and
// carries the freshly loaded settings.
type SettingsChangedEvent struct {
	Path     string
	Settings config.Settings
}

// Watcher watches the settings file for changes. Editors rewrite the file in
// bursts (truncate, write, rename), so events are debounced and listeners see
// a single reload per burst.
type Watcher struct {
	watcher       *fsnotify.Watcher
	path          string
	changes       chan SettingsChangedEvent
	done          chan struct{}
	debounceTimer *time.Timer
	pending       bool
}

// NewWatcher creates a watcher for the settings file at path.
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		path:    path,
		changes: make(chan SettingsChangedEvent, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. The containing directory is watched rather than the
// file itself so atomic save (write temp, rename over) is still seen.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() {
	close(w.done)
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.watcher.Close()
	close(w.changes)
}

// Changes returns the channel for settings change notifications
func (w *Watcher) Changes() <-chan SettingsChangedEvent {
	return w.changes
}

// watch is the main event loop
func (w *Watcher) watch() {
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}

			w.pending = true
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, w.processPending)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log and keep watching
			logger.Warn("watcher error", "error", err)
		}
	}
}

// processPending reloads the settings once per debounced burst
func (w *Watcher) processPending() {
	if !w.pending {
		return
	}
	w.pending = false

	settings, err := config.LoadSettings(w.path)
	if err != nil {
		logger.Error("failed to reload settings", "error", err, "path", w.path)
		return
	}

	select {
	case w.changes <- SettingsChangedEvent{Path: w.path, Settings: settings}:
	case <-w.done:
	}
}
