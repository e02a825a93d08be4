package report

import (
	"context"
	"time"
)

// Writer persists a finished meeting as human and machine readable files.
type Writer interface {
	// Write stores r under the output directory and returns the created paths.
	Write(ctx context.Context, r Report) ([]string, error)
}

// Report is everything known about one processed recording.
type Report struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	SourceFile  string    `json:"source_file"`
	CreatedAt   time.Time `json:"created_at"`
	Transcript  string    `json:"transcript"`
	Summary     string    `json:"summary"`
	ActionItems []string  `json:"action_items"`
}
