// Package watch re-runs a callback whenever watched files change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	xlog "github.com/appscodelabs/navcheck/internal/log"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 300 * time.Millisecond

// Watcher calls OnChange after files under Paths change. Directories are
// watched recursively, including directories created later.
type Watcher struct {
	Paths    []string
	Debounce time.Duration
	OnChange func(ctx context.Context)
}

// Run blocks until ctx is cancelled. Callbacks never overlap.
func (w *Watcher) Run(ctx context.Context) error {
	logger := xlog.WithComponent("watch")

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	for _, p := range w.Paths {
		if err := addRecursive(fw, p); err != nil {
			return err
		}
	}
	logger.Info().Strs("paths", w.Paths).Msg("watching for changes")

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("watcher stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := addRecursive(fw, event.Name); err != nil {
						logger.Warn().Err(err).Str("path", event.Name).Msg("cannot watch new directory")
					}
				}
			}
			logger.Debug().Str("op", event.Op.String()).Str("path", event.Name).Msg("file changed")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			w.OnChange(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watcher error")
		}
	}
}

func addRecursive(fw *fsnotify.Watcher, root string) error {
	fi, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	if !fi.IsDir() {
		// watch the parent so editors that replace the file are seen
		return fw.Add(filepath.Dir(root))
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules") {
			return filepath.SkipDir
		}
		if err := fw.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		return nil
	})
}
