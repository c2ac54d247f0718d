package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period File waits for before reporting.
const DefaultDebounce = 150 * time.Millisecond

// File reports changes to path with the default debounce window.
func File(ctx context.Context, path string) (<-chan struct{}, error) {
	return Debounced(ctx, path, DefaultDebounce)
}

// Debounced reports changes to path once no further event arrived for the
// window. The parent directory is watched so atomic replace-by-rename writes
// are seen. The channel closes when ctx ends.
func Debounced(ctx context.Context, path string, window time.Duration) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	target := filepath.Clean(path)
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer w.Close()

		var timer *time.Timer
		var timerC <-chan time.Time
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(window)
					timerC = timer.C
				} else {
					timer.Reset(window)
				}
			case <-timerC:
				timer, timerC = nil, nil
				select {
				case out <- struct{}{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return out, nil
}
