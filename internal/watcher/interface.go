package watcher

import "context"

// Watcher monitors a project's slides folder for image files being added,
// removed, or renamed outside the application.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// SyncHandler is invoked after a burst of slide file changes settles, to
// re-sync the project's slide list with what is on disk.
type SyncHandler func(ctx context.Context) error
