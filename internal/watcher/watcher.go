package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/slidecast/slidecast/internal/logger"
)

// settleDelay batches bursts of file events (a multi-file copy fires one
// event per file) into a single re-sync.
const settleDelay = 300 * time.Millisecond

type implWatcher struct {
	slidesDir string
	handler   SyncHandler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
}

// Start blocks, monitoring the slides folder until the context is canceled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching slides folder: %s", w.slidesDir)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Slide watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !isImageFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-image file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "Slide change detected: %s %s", event.Op, event.Name)
			pending = time.After(settleDelay)

		case <-pending:
			pending = nil
			if err := w.handler(ctx); err != nil {
				w.logger.Error(ctx, "Slide re-sync failed: %v", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"} {
		if ext == format {
			return true
		}
	}
	return false
}
