package bank

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for further writes before
// reloading, so editors that write in multiple chunks trigger one reload.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads a Store when its bank file changes on disk. A failed
// reload is logged and the previous bank stays in place.
type Watcher struct {
	store    *Store
	path     string
	debounce time.Duration
	log      *slog.Logger
}

// NewWatcher creates a Watcher for the given bank file.
func NewWatcher(store *Store, path string, log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{
		store:    store,
		path:     path,
		debounce: DefaultDebounce,
		log:      log,
	}
}

// Watch blocks until ctx is done, reloading the store on file changes.
// The parent directory is watched rather than the file itself so that
// atomic rename-over-write (the common editor save strategy) is seen.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.store.LoadFile(w.path); err != nil {
				w.log.Error("bank reload failed, keeping previous bank",
					"path", w.path, "error", err)
				continue
			}
			w.log.Info("bank reloaded after file change", "path", w.path)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("bank watcher error", "error", err)
		}
	}
}
