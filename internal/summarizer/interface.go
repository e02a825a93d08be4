package summarizer

import "context"

// Summarizer produces a narrative summary and action items from a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (Result, error)
}

// Generator is one text-in/text-out inference capability.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Operation names used on SUMMARIZATION_FAILED errors to say which request faulted.
const (
	OpSummary     = "summary"
	OpActionItems = "action_items"
	OpBoth        = "summary,action_items"
)

// Result of one summarization. ActionItems is never nil.
type Result struct {
	Summary     string   `json:"summary"`
	ActionItems []string `json:"action_items"`
	// SummaryUnavailable is set when the model answered but produced no summary text.
	SummaryUnavailable bool `json:"-"`
}
