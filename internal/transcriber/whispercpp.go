//go:build whispercpp

package transcriber

import (
	"context"
	"fmt"
	"strings"
	"sync"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
	"github.com/nguyentantai21042004/meetscribe/pkg/executor"
)

type whisperCppModel struct {
	model      whisper.Model
	ffmpegPath string
	executor   executor.Executor
	logger     logger.Logger

	// ggml inference is not thread safe; contexts are per call but share the backend
	inferenceMu sync.Mutex
}

// NewWhisperCppLoader returns a loader that keeps a whisper.cpp model resident
// in this process.
func NewWhisperCppLoader(opts CLIOptions, ex executor.Executor, log logger.Logger) ModelLoader {
	return func(ctx context.Context) (Model, error) {
		model, err := whisper.New(opts.ModelPath)
		if err != nil {
			return nil, fmt.Errorf("whisper.cpp: %w", err)
		}
		return &whisperCppModel{
			model:      model,
			ffmpegPath: opts.FFmpegPath,
			executor:   ex,
			logger:     log,
		}, nil
	}
}

func (m *whisperCppModel) Transcribe(ctx context.Context, path string, params Params) (string, error) {
	samples, err := m.decode(ctx, path)
	if err != nil {
		return "", err
	}

	wctx, err := m.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("create whisper context: %w", err)
	}
	if err := wctx.SetLanguage(params.Language); err != nil {
		return "", fmt.Errorf("set language %q: %w", params.Language, err)
	}
	wctx.SetTranslate(false)
	wctx.SetTemperature(params.Temperature)
	wctx.SetBeamSize(params.BeamSize)
	if params.Threads > 0 {
		wctx.SetThreads(uint(params.Threads))
	}
	if params.Prompt != "" {
		wctx.SetInitialPrompt(params.Prompt)
	}

	var result strings.Builder
	segmentCallback := func(segment whisper.Segment) {
		result.WriteString(segment.Text)
	}

	// Process cannot be interrupted; on timeout the caller gets the context
	// error while the inference finishes in the background.
	done := make(chan error, 1)
	go func() {
		m.inferenceMu.Lock()
		defer m.inferenceMu.Unlock()
		done <- wctx.Process(samples, nil, segmentCallback, nil)
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("whisper process: %w", err)
		}
	case <-ctx.Done():
		return "", fmt.Errorf("whisper process: %w", ctx.Err())
	}

	return joinSegments(result.String()), nil
}

// decode has ffmpeg emit raw 16kHz mono s16le PCM on stdout.
func (m *whisperCppModel) decode(ctx context.Context, path string) ([]float32, error) {
	pcm, err := m.executor.Execute(ctx, m.ffmpegPath,
		"-i", path,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-",
	)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg decode audio: %w", err)
	}
	return bytesToFloat32(pcm)
}
