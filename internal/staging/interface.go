package staging

import (
	"context"
	"time"
)

// Store materializes uploads as uniquely named temporary files and removes them.
//
// Every successful Stage must be paired with a Release on every exit path;
// Release is idempotent and safe on a nil handle.
type Store interface {
	Stage(data []byte, suffix string) (*File, error)
	Release(f *File) error
	// Sweep removes files left behind by earlier processes that died mid-run.
	Sweep(ctx context.Context, olderThan time.Duration) (int, error)
	Dir() string
}
