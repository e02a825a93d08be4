package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
	"github.com/nguyentantai21042004/meetscribe/internal/audio"
)

type probingTranscriber struct {
	next   Transcriber
	prober audio.Prober
}

// WithProbe re-checks the staged file with prober before transcribing. A probe
// rejection keeps its INVALID_FORMAT code; any other probe fault is a
// transcription failure.
func WithProbe(next Transcriber, prober audio.Prober) Transcriber {
	if prober == nil {
		return next
	}
	return &probingTranscriber{next: next, prober: prober}
}

func (t *probingTranscriber) Warmup(ctx context.Context) error {
	return t.next.Warmup(ctx)
}

func (t *probingTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	if err := t.prober.Probe(ctx, path); err != nil {
		if code, ok := apperror.CodeOf(err); ok && code == apperror.CodeInvalidFormat {
			return "", err
		}
		return "", apperror.TranscriptionFailed(err)
	}
	return t.next.Transcribe(ctx, path)
}
