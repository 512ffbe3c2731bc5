// Package watcher reports debounced changes to a set of files.
//
// Editors often save by writing a temp file and renaming it over the
// original, so the watcher observes parent directories and filters by name
// rather than watching the files themselves.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/audioreg/internal/log"
)

// Watcher sends on C after a burst of changes to any watched file has been
// quiet for the debounce period.
type Watcher struct {
	C <-chan struct{}

	c        chan struct{}
	fsw      *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
	done     chan struct{}
	once     sync.Once
}

// New watches paths. Empty paths are skipped.
func New(debounce time.Duration, paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	files := make(map[string]struct{})
	dirs := make(map[string]struct{})
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	c := make(chan struct{}, 1)
	return &Watcher{
		C:        c,
		c:        c,
		fsw:      fsw,
		files:    files,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Run delivers change notifications until ctx is cancelled or Close is called.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			log.Debug(log.CatWatch, "File changed", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn(log.CatWatch, "Watcher error", "error", err)
		case <-fire:
			fire = nil
			select {
			case w.c <- struct{}{}:
			default: // a notification is already pending
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}
