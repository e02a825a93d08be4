package transcriber

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

// RemoteOptions configure an OpenAI-compatible transcription endpoint
type RemoteOptions struct {
	BaseURL  string
	APIKey   string
	Model    string
	Language string
	Prompt   string
}

type implRemote struct {
	client *openai.Client
	opts   RemoteOptions
	logger logger.Logger
}

// NewRemote creates a Transcriber that uploads the staged file to a hosted model.
func NewRemote(opts RemoteOptions, log logger.Logger) Transcriber {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Language == "" {
		opts.Language = "en"
	}

	return &implRemote{
		client: openai.NewClientWithConfig(cfg),
		opts:   opts,
		logger: log,
	}
}

func (t *implRemote) Warmup(context.Context) error {
	return nil
}

func (t *implRemote) Transcribe(ctx context.Context, path string) (string, error) {
	start := time.Now()

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:       t.opts.Model,
		FilePath:    path,
		Prompt:      t.opts.Prompt,
		Temperature: 0,
		Language:    t.opts.Language,
		Format:      openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", apperror.TranscriptionFailed(classifyRemoteError(err))
	}

	t.logger.Debug(ctx, "Remote transcription (%s) finished in %s", t.opts.Model, time.Since(start))
	return strings.TrimSpace(resp.Text), nil
}

// classifyRemoteError separates faults reported by the model API from HTTP and
// transport failures.
func classifyRemoteError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("model api error (status %d): %w", apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("http error (status %d): %w", reqErr.HTTPStatusCode, err)
	}
	return fmt.Errorf("transport error: %w", err)
}
