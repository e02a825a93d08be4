package transcriber

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

type implLocal struct {
	name   string
	loader ModelLoader
	params Params
	logger logger.Logger

	once    sync.Once
	model   Model
	loadErr error
}

// NewLocal creates a Transcriber over an in-process or on-host model. The model is
// loaded by the first Warmup or Transcribe call and then shared; a failed load is
// not retried.
func NewLocal(name string, loader ModelLoader, params Params, log logger.Logger) Transcriber {
	return &implLocal{
		name:   name,
		loader: loader,
		params: params,
		logger: log,
	}
}

func (t *implLocal) Warmup(ctx context.Context) error {
	if _, err := t.load(ctx); err != nil {
		return apperror.TranscriptionFailed(err)
	}
	return nil
}

func (t *implLocal) Transcribe(ctx context.Context, path string) (string, error) {
	model, err := t.load(ctx)
	if err != nil {
		return "", apperror.TranscriptionFailed(err)
	}

	start := time.Now()
	text, err := model.Transcribe(ctx, path, t.params)
	if err != nil {
		return "", apperror.TranscriptionFailed(err)
	}

	t.logger.Debug(ctx, "Local transcription (%s) finished in %s", t.name, time.Since(start))
	return strings.TrimSpace(text), nil
}

// load runs the loader exactly once. The load is detached from the caller's
// cancellation so one request's timeout cannot poison the shared model.
func (t *implLocal) load(ctx context.Context) (Model, error) {
	t.once.Do(func() {
		start := time.Now()
		t.logger.Info(ctx, "Loading %s speech model...", t.name)
		t.model, t.loadErr = t.loader(context.WithoutCancel(ctx))
		if t.loadErr != nil {
			t.loadErr = fmt.Errorf("load %s model: %w", t.name, t.loadErr)
			t.logger.Error(ctx, "Failed to load %s model: %v", t.name, t.loadErr)
			return
		}
		t.logger.Info(ctx, "Loaded %s speech model in %s", t.name, time.Since(start))
	})
	return t.model, t.loadErr
}
