package summarizer

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

type ollamaGenerator struct {
	llm llms.Model
}

// NewOllama creates a Generator that talks to an Ollama server. An empty
// serverURL uses the client default.
func NewOllama(serverURL, model string) (Generator, error) {
	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return &ollamaGenerator{llm: llm}, nil
}

func newLLMGenerator(llm llms.Model) Generator {
	return &ollamaGenerator{llm: llm}
}

func (g *ollamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(0))
}
