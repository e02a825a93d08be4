package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/meetscribe/internal/audio"
	"github.com/nguyentantai21042004/meetscribe/internal/config"
	"github.com/nguyentantai21042004/meetscribe/internal/logger"
	"github.com/nguyentantai21042004/meetscribe/pkg/executor"
)

// New creates the Transcriber selected by cfg.Transcriber.Backend, wrapped with prober.
func New(cfg *config.Config, exec executor.Executor, prober audio.Prober, log logger.Logger) (Transcriber, error) {
	var t Transcriber

	switch cfg.Transcriber.Backend {
	case "local":
		opts := CLIOptions{
			BinaryPath: cfg.Whisper.BinaryPath,
			ModelPath:  cfg.Whisper.ModelPath,
			FFmpegPath: cfg.FFmpeg.BinaryPath,
		}
		params := DefaultParams(cfg.Whisper.Language)
		params.Threads = cfg.Whisper.Threads
		params.Prompt = cfg.Whisper.Prompt

		switch cfg.Whisper.Engine {
		case "cli":
			t = NewLocal("whisper-cli", NewCLILoader(opts, exec, log), params, log)
		case "whispercpp":
			t = NewLocal("whisper.cpp", NewWhisperCppLoader(opts, exec, log), params, log)
		default:
			return nil, fmt.Errorf("transcriber: unknown whisper engine %q (supported: cli, whispercpp)", cfg.Whisper.Engine)
		}

	case "remote":
		t = NewRemote(RemoteOptions{
			BaseURL:  cfg.OpenAI.BaseURL,
			APIKey:   cfg.OpenAI.APIKey,
			Model:    cfg.OpenAI.Model,
			Language: cfg.Whisper.Language,
			Prompt:   cfg.Whisper.Prompt,
		}, log)

	default:
		return nil, fmt.Errorf("transcriber: unknown backend %q (supported: local, remote)", cfg.Transcriber.Backend)
	}

	return WithProbe(t, prober), nil
}
