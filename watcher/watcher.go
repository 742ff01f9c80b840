package watcher

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a fixed set of files. It watches their
// directories so editors that save by rename are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changes chan string
	done    chan struct{}
}

// New starts watching paths.
func New(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		watcher: fw,
		files:   make(map[string]bool),
		changes: make(chan string, 1),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	go w.run()
	return w, nil
}

// Changes delivers the path of a changed file. Bursts of events are
// coalesced while the receiver is busy, so only the latest pending path is
// kept.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			w.notify(abs)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: file watcher: %v", err)
		}
	}
}

func (w *Watcher) notify(path string) {
	for {
		select {
		case w.changes <- path:
			return
		default:
		}
		// drop the stale pending path and retry
		select {
		case <-w.changes:
		default:
		}
	}
}
