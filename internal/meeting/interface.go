package meeting

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get for an unknown meeting id.
var ErrNotFound = errors.New("meeting not found")

// StatusPending is the initial status of every stored action item.
const StatusPending = "pending"

// Repository stores processed meetings and their action items.
type Repository interface {
	// Save inserts m, assigning ID and CreatedAt when they are empty.
	Save(ctx context.Context, m *Meeting) error
	Get(ctx context.Context, id string) (Meeting, error)
	// List returns meeting headers (no transcript or action items), newest first.
	List(ctx context.Context, limit int) ([]Meeting, error)
	Close() error
}

type Meeting struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	SourceFile  string       `json:"source_file"`
	Transcript  string       `json:"transcript,omitempty"`
	Summary     string       `json:"summary"`
	ActionItems []ActionItem `json:"action_items,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

type ActionItem struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
