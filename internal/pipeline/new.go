package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/meetscribe/internal/audio"
	"github.com/nguyentantai21042004/meetscribe/internal/logger"
	"github.com/nguyentantai21042004/meetscribe/internal/staging"
	"github.com/nguyentantai21042004/meetscribe/internal/summarizer"
	"github.com/nguyentantai21042004/meetscribe/internal/transcriber"
)

// Options tune stage timeouts and the degenerate-output policies.
type Options struct {
	TranscribeTimeout time.Duration
	SummarizeTimeout  time.Duration
	// DegradeActionItems turns a failed action-item request into an empty list
	// instead of failing the run.
	DegradeActionItems bool
	// AllowEmptySummary accepts a run whose model produced no summary text.
	AllowEmptySummary bool
	// Secrets are scrubbed from returned error text, next to the staging directory.
	Secrets []string
}

type implPipeline struct {
	validator   audio.Validator
	store       staging.Store
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	opts        Options
	logger      logger.Logger
}

// New creates a Pipeline from its four collaborators.
func New(
	validator audio.Validator,
	store staging.Store,
	tr transcriber.Transcriber,
	sum summarizer.Summarizer,
	opts Options,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		validator:   validator,
		store:       store,
		transcriber: tr,
		summarizer:  sum,
		opts:        opts,
		logger:      log,
	}
}
