// Package watch reports changes to a single file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/hearth/internal/logger"
)

// DefaultDebounce is how long a burst of events must be quiet before
// onChange runs.
const DefaultDebounce = 200 * time.Millisecond

// Watch calls onChange after path is written, created or replaced. Bursts of
// events within debounce collapse into one call. The parent directory is
// watched so that editors replacing the file by rename are noticed. Watch
// blocks until ctx is cancelled and then returns nil.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	log := logger.Named("watch")
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	log.Debug("watching", zap.String("path", abs))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || event.Op&relevant == 0 {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))

		case <-timer.C:
			log.Debug("file changed", zap.String("path", abs))
			onChange()
		}
	}
}
