// Package watch regenerates SEO metadata when markdown files change.
package watch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RunFunc performs one generation for a changed file.
type RunFunc func(ctx context.Context, path string) error

// Run watches dir for markdown writes and invokes runFile per changed file,
// debounced so a burst of editor saves triggers one generation. Events inside
// the debounce window after a run are suppressed, which also covers the write
// seomark itself performs when patching the file.
func Run(ctx context.Context, dir string, debounce time.Duration, out io.Writer, runFile RunFunc) error {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	fmt.Fprintf(out, "watching %s (debounce %s)\n", dir, debounce)

	var mu sync.Mutex
	timers := make(map[string]*time.Timer)
	lastRun := make(map[string]time.Time)

	fire := func(path string) {
		mu.Lock()
		delete(timers, path)
		if time.Since(lastRun[path]) < debounce {
			mu.Unlock()
			return
		}
		mu.Unlock()

		if err := runFile(ctx, path); err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
		}

		mu.Lock()
		lastRun[path] = time.Now()
		mu.Unlock()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}

			mu.Lock()
			if time.Since(lastRun[ev.Name]) < debounce {
				mu.Unlock()
				continue
			}
			if t, exists := timers[ev.Name]; exists {
				t.Reset(debounce)
			} else {
				path := ev.Name
				timers[path] = time.AfterFunc(debounce, func() { fire(path) })
			}
			mu.Unlock()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "watch error: %v\n", err)
		}
	}
}
