package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/meetscribe/internal/audio"
	"github.com/nguyentantai21042004/meetscribe/internal/config"
	"github.com/nguyentantai21042004/meetscribe/internal/logger"
	"github.com/nguyentantai21042004/meetscribe/internal/meeting"
	"github.com/nguyentantai21042004/meetscribe/internal/pipeline"
	"github.com/nguyentantai21042004/meetscribe/internal/report"
	"github.com/nguyentantai21042004/meetscribe/internal/staging"
	"github.com/nguyentantai21042004/meetscribe/internal/summarizer"
	"github.com/nguyentantai21042004/meetscribe/internal/transcriber"
	"github.com/nguyentantai21042004/meetscribe/pkg/executor"
)

// staleStagingAge is how old a staged file must be before the startup sweep removes it.
const staleStagingAge = time.Hour

// app holds the wired dependencies shared by all commands.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	fs       afero.Fs
	pipeline pipeline.Pipeline
	reports  report.Writer
	meetings meeting.Repository
}

func buildApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

	fs := afero.NewOsFs()
	exec := executor.New()

	validator := audio.NewValidator(cfg.Audio.AllowedExtensions)
	prober, err := audio.NewProber(cfg.Audio.Probe, fs, exec, cfg.FFmpeg.ProbePath)
	if err != nil {
		return nil, err
	}

	store := staging.New(fs, cfg.Paths.Temp, log)
	if _, err := store.Sweep(ctx, staleStagingAge); err != nil {
		log.Warn(ctx, "Failed to sweep staging directory: %v", err)
	}

	tr, err := transcriber.New(cfg, exec, prober, log)
	if err != nil {
		return nil, err
	}
	if cfg.Whisper.Preload {
		if err := tr.Warmup(ctx); err != nil {
			return nil, fmt.Errorf("preload transcription model: %w", err)
		}
	}

	gen, err := summarizer.NewGenerator(cfg, log)
	if err != nil {
		return nil, err
	}

	secrets := redactionSet(cfg)

	pipe := pipeline.New(validator, store, tr, summarizer.New(gen, log), pipeline.Options{
		TranscribeTimeout:  cfg.Transcriber.Timeout,
		SummarizeTimeout:   cfg.Summarizer.Timeout,
		DegradeActionItems: cfg.Pipeline.DegradeActionItems,
		AllowEmptySummary:  cfg.Pipeline.AllowEmptySummary,
		Secrets:            secrets,
	}, log)

	reports, err := report.New(cfg.Paths.Output, cfg.Report.Formats, log)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		log:      log,
		fs:       fs,
		pipeline: pipe,
		reports:  reports,
	}

	if cfg.Storage.DatabasePath != "" {
		repo, err := meeting.Open(ctx, cfg.Storage.DatabasePath, log)
		if err != nil {
			return nil, err
		}
		a.meetings = repo
	}

	return a, nil
}

func (a *app) Close() {
	if a.meetings != nil {
		if err := a.meetings.Close(); err != nil {
			a.log.Warn(context.Background(), "Close meeting database: %v", err)
		}
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// redactionSet lists what must never reach a caller in error text: API keys
// and the configured tool and model locations.
func redactionSet(cfg *config.Config) []string {
	secrets := cfg.GeminiKeys()
	if cfg.OpenAI.APIKey != "" {
		secrets = append(secrets, cfg.OpenAI.APIKey)
	}
	for _, p := range []string{cfg.Whisper.ModelPath, cfg.Whisper.BinaryPath, cfg.FFmpeg.BinaryPath, cfg.FFmpeg.ProbePath} {
		// Bare command names like "ffmpeg" are resolved through PATH and reveal nothing.
		if strings.ContainsAny(p, `/\`) {
			secrets = append(secrets, p)
		}
	}
	return secrets
}
