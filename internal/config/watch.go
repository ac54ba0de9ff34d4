package config

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a profiles file whenever it changes on disk and
// publishes the new profile map on Updates. The actual fsnotify wiring
// (the pack's own watcher package only shipped its conflict-event types,
// not its debounced file watcher) follows the same new-watcher/add/event-
// loop shape fsnotify's own examples use.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	Updates chan map[string]Profile
	done    chan struct{}
}

// NewWatcher starts watching path and performs an initial load.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		fsw:     fsw,
		Updates: make(chan map[string]Profile, 1),
		done:    make(chan struct{}),
	}

	if profiles, err := LoadProfiles(path); err == nil {
		w.Updates <- profiles
	} else {
		slog.Warn("config: initial profile load failed", "path", path, "error", err)
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			profiles, err := LoadProfiles(w.path)
			if err != nil {
				slog.Warn("config: profile reload failed", "path", w.path, "error", err)
				continue
			}
			slog.Info("config: profiles reloaded", "path", w.path, "count", len(profiles))
			select {
			case w.Updates <- profiles:
			default:
				// drop the stale pending update, the new one supersedes it.
				select {
				case <-w.Updates:
				default:
				}
				w.Updates <- profiles
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("config: watch error", "path", w.path, "error", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and releases its fsnotify handle.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
