// Package watch re-runs the pipeline whenever the input export file changes.
// Results are published on completion only: a pass in flight never mutates
// previously published aggregates.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single input file for writes. The parent directory is
// watched rather than the file itself, because editors commonly replace the
// file on save.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func(text string)

	// Debounce window for rapid successive saves.
	debounce time.Duration

	doneCh chan struct{}
}

// New creates a Watcher for path. onChange receives the full file contents
// after each settled change.
func New(path string, onChange func(string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{
		path:     path,
		watcher:  fw,
		onChange: onChange,
		debounce: 500 * time.Millisecond,
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching and blocks until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	defer w.watcher.Close()
	defer close(w.doneCh)

	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", w.path, err)
	}

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			w.fire()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// Done is closed when Start returns, for callers that run it in a goroutine.
func (w *Watcher) Done() <-chan struct{} { return w.doneCh }

func (w *Watcher) fire() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		// The file may be mid-replace; the next event retries.
		return
	}
	w.onChange(string(data))
}
