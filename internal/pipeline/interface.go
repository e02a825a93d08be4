package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/meetscribe/internal/summarizer"
)

// Pipeline turns an uploaded recording into a transcript, a summary and action items.
type Pipeline interface {
	// Run executes validate, stage, transcribe, summarize and assemble. It
	// returns either a complete Result or one classified error, never both.
	Run(ctx context.Context, data []byte, filename string) (Result, error)
	// Transcribe stops after the transcription stage.
	Transcribe(ctx context.Context, data []byte, filename string) (string, error)
	// Summarize runs only the summarization stage on an existing transcript.
	Summarize(ctx context.Context, transcript string) (summarizer.Result, error)
}

// Result is the terminal artifact of a successful run.
type Result struct {
	Transcript  string   `json:"transcript"`
	Summary     string   `json:"summary"`
	ActionItems []string `json:"action_items"`
}
