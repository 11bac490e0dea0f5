// Package watcher re-runs a callback whenever a model file changes on
// disk, debounced so that slicers and editors writing in multiple
// chunks trigger a single re-analysis.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ModelWatcher watches a single model file for changes
type ModelWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	path     string
	onChange func(string)
	timer    *time.Timer
}

// NewModelWatcher creates a new watcher with the given debounce window
func NewModelWatcher(debounce time.Duration) (*ModelWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &ModelWatcher{
		watcher:  watcher,
		debounce: debounce,
	}, nil
}

// Watch starts watching the given file. onChange is called with the
// absolute path after each debounced write or create event.
func (mw *ModelWatcher) Watch(path string, onChange func(string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	if err := mw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	mw.mu.Lock()
	mw.path = absPath
	mw.onChange = onChange
	mw.mu.Unlock()

	go mw.loop()
	return nil
}

func (mw *ModelWatcher) loop() {
	for {
		select {
		case event, ok := <-mw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				mw.handleChange(event.Name)
			}

		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Watcher error: %v\n", err)
		}
	}
}

// handleChange schedules the callback, resetting any pending timer so
// rapid successive writes collapse into one invocation.
func (mw *ModelWatcher) handleChange(path string) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	if path != mw.path {
		return
	}

	if mw.timer != nil {
		mw.timer.Stop()
	}

	callback := mw.onChange
	mw.timer = time.AfterFunc(mw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher
func (mw *ModelWatcher) Close() error {
	return mw.watcher.Close()
}
