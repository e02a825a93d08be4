package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
	"github.com/nguyentantai21042004/meetscribe/pkg/executor"
)

// CLIOptions locate the whisper.cpp command line tool, its model and ffmpeg
type CLIOptions struct {
	BinaryPath string
	ModelPath  string
	FFmpegPath string
}

type cliModel struct {
	opts     CLIOptions
	executor executor.Executor
	logger   logger.Logger
}

// NewCLILoader returns a loader that checks the whisper-cli binary, ffmpeg and
// the model file are all present. Whisper-cli reads the model on every run, so
// the loaded Model only carries the resolved paths.
func NewCLILoader(opts CLIOptions, ex executor.Executor, log logger.Logger) ModelLoader {
	return func(ctx context.Context) (Model, error) {
		if _, err := os.Stat(opts.ModelPath); err != nil {
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				err = pathErr.Err
			}
			return nil, fmt.Errorf("model file %s: %w", filepath.Base(opts.ModelPath), err)
		}
		binary, err := lookPath(opts.BinaryPath)
		if err != nil {
			return nil, fmt.Errorf("whisper binary: %w", err)
		}
		ffmpeg, err := lookPath(opts.FFmpegPath)
		if err != nil {
			return nil, fmt.Errorf("ffmpeg binary: %w", err)
		}

		return &cliModel{
			opts:     CLIOptions{BinaryPath: binary, ModelPath: opts.ModelPath, FFmpegPath: ffmpeg},
			executor: ex,
			logger:   log,
		}, nil
	}
}

var lookPath = exec.LookPath

// Transcribe converts the staged file to 16kHz mono WAV and runs whisper-cli on it.
func (m *cliModel) Transcribe(ctx context.Context, path string, params Params) (string, error) {
	wavPath, err := m.convertToWAV(ctx, path)
	if err != nil {
		return "", err
	}
	defer m.cleanupTempFile(ctx, wavPath)

	// -nt: plain text without timestamps
	// -np: no progress or system info on stdout
	// -tp/-bs/-bo: greedy decoding, no sampling
	args := []string{
		"-m", m.opts.ModelPath,
		"-f", wavPath,
		"-l", params.Language,
		"-tp", strconv.FormatFloat(float64(params.Temperature), 'f', -1, 32),
		"-bs", strconv.Itoa(params.BeamSize),
		"-bo", strconv.Itoa(params.BestOf),
		"-nt",
		"-np",
	}
	if params.Threads > 0 {
		args = append(args, "-t", strconv.Itoa(params.Threads))
	}
	if params.Prompt != "" {
		args = append(args, "--prompt", params.Prompt)
	}

	out, err := m.executor.Execute(ctx, m.opts.BinaryPath, args...)
	if err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	return joinSegments(string(out)), nil
}

// convertToWAV extracts audio as 16kHz mono PCM, the input whisper expects.
// The output sits next to the staged file and is removed by the caller.
func (m *cliModel) convertToWAV(ctx context.Context, path string) (string, error) {
	wavPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".16k.wav"

	args := []string{
		"-i", path,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := m.executor.Execute(ctx, m.opts.FFmpegPath, args...); err != nil {
		m.cleanupTempFile(ctx, wavPath)
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}
	return wavPath, nil
}

func (m *cliModel) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		m.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filepath.Base(filePath), err)
	}
}

// joinSegments flattens whisper's one-segment-per-line output into a single
// blob and drops blank-audio markers.
func joinSegments(out string) string {
	var parts []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "[BLANK_AUDIO]" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}
