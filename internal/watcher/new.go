package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/slidecast/slidecast/internal/logger"
)

// New creates a Watcher over the given slides directory.
func New(slidesDir string, handler SyncHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(slidesDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		slidesDir: slidesDir,
		handler:   handler,
		logger:    log,
		watcher:   fsw,
	}, nil
}
