package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/meetscribe/internal/config"
	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

type implSummarizer struct {
	generator Generator
	logger    logger.Logger
}

// New creates a Summarizer that issues both prompts against generator.
func New(generator Generator, log logger.Logger) Summarizer {
	return &implSummarizer{
		generator: generator,
		logger:    log,
	}
}

// NewGenerator builds the Generator selected by cfg.Summarizer.Backend.
func NewGenerator(cfg *config.Config, log logger.Logger) (Generator, error) {
	switch cfg.Summarizer.Backend {
	case "ollama":
		return NewOllama(cfg.Ollama.ServerURL, cfg.Ollama.Model)
	case "gemini":
		keys := cfg.GeminiKeys()
		if len(keys) == 0 {
			return nil, fmt.Errorf("summarizer: gemini backend needs at least one API key")
		}
		return NewGemini(keys, cfg.Gemini.Model, log), nil
	default:
		return nil, fmt.Errorf("summarizer: unknown backend %q (supported: ollama, gemini)", cfg.Summarizer.Backend)
	}
}
