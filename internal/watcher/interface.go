package watcher

import "context"

// Watcher monitors a drop folder and hands new recordings to a handler.
type Watcher interface {
	// Start blocks until ctx is cancelled, then waits for in-flight handlers.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one file that appeared in the watched directory.
type EventHandler func(ctx context.Context, filePath string) error

// Filter reports whether a path should be handed to the EventHandler.
type Filter func(filePath string) bool
