package summarizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type mockLLM struct {
	response string
	err      error
	prompt   string
	temp     float64
}

func (m *mockLLM) GenerateContent(_ context.Context, messages []llms.MessageContent, opts ...llms.CallOption) (*llms.ContentResponse, error) {
	var o llms.CallOptions
	for _, opt := range opts {
		opt(&o)
	}
	m.temp = o.Temperature
	if len(messages) > 0 && len(messages[0].Parts) > 0 {
		if p, ok := messages[0].Parts[0].(llms.TextContent); ok {
			m.prompt = p.Text
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

func (m *mockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestOllamaGenerate(t *testing.T) {
	llm := &mockLLM{response: "Team planned a Friday release.", temp: 1}
	g := newLLMGenerator(llm)

	text, err := g.Generate(context.Background(), SummaryPrompt("We will ship by Friday."))
	require.NoError(t, err)
	assert.Equal(t, "Team planned a Friday release.", text)
	assert.Equal(t, SummaryPrompt("We will ship by Friday."), llm.prompt)
	assert.Zero(t, llm.temp)
}

func TestOllamaGenerateError(t *testing.T) {
	boom := errors.New("model not found")
	_, err := newLLMGenerator(&mockLLM{err: boom}).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, boom)
}

func TestNewOllama(t *testing.T) {
	g, err := NewOllama("http://127.0.0.1:11434", "llama3.2")
	require.NoError(t, err)
	assert.NotNil(t, g)
}
