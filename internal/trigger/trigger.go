// Package trigger produces zero-payload "capture requested" signals from
// outside the UI event loop.
//
// The concrete producer is a trigger file: binding a compositor or desktop
// hotkey to `touch <path>` fires one capture per press. This is the portable
// global-hotkey path on Wayland, where processes cannot snoop the keyboard.
// The signal channel holds one pending signal; signals arriving while one is
// already pending coalesce, which is harmless because identical clipboard
// content collapses in the history anyway.
package trigger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher signals whenever the trigger file appears, removing the file
// after each fire so the next `touch` fires again.
type FileWatcher struct {
	path    string
	signals chan struct{}
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatchFile watches path's parent directory for the trigger file. The
// directory must exist.
func WatchFile(path string) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("trigger: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("trigger: watch %s: %w", filepath.Dir(path), err)
	}

	fw := &FileWatcher{
		path:    path,
		signals: make(chan struct{}, 1),
		watcher: w,
		done:    make(chan struct{}),
	}

	// A trigger file left behind by a previous run still counts as a press.
	if _, err := os.Stat(path); err == nil {
		fw.fire()
	}

	go fw.loop()
	return fw, nil
}

// Signals returns the channel carrying capture requests. The channel is
// never closed.
func (fw *FileWatcher) Signals() <-chan struct{} {
	return fw.signals
}

// Close stops the watcher.
func (fw *FileWatcher) Close() {
	close(fw.done)
	_ = fw.watcher.Close()
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case <-fw.done:
			return
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != fw.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Chmod) {
				continue
			}
			fw.fire()
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("trigger watch error", "err", err)
		}
	}
}

func (fw *FileWatcher) fire() {
	_ = os.Remove(fw.path)
	select {
	case fw.signals <- struct{}{}:
	default:
	}
}
