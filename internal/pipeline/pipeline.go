package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
	"github.com/nguyentantai21042004/meetscribe/internal/staging"
	"github.com/nguyentantai21042004/meetscribe/internal/summarizer"
)

// Run orchestrates the whole audio-to-insight pipeline.
func (p *implPipeline) Run(ctx context.Context, data []byte, filename string) (res Result, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			res, err = Result{}, p.fail(ctx, filename, err)
			return
		}
		p.logger.Info(ctx, "Processed %s in %s: %d chars transcript, %d action items",
			filename, time.Since(start).Round(time.Millisecond), len(res.Transcript), len(res.ActionItems))
	}()

	suffix, err := p.validator.Validate(filename)
	if err != nil {
		return Result{}, err
	}

	file, err := p.store.Stage(data, suffix)
	if err != nil {
		return Result{}, err
	}
	defer p.release(ctx, file)

	transcript, err := p.transcribe(ctx, file)
	if err != nil {
		return Result{}, err
	}

	sum, err := p.summarize(ctx, transcript)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Transcript:  transcript,
		Summary:     sum.Summary,
		ActionItems: sum.ActionItems,
	}, nil
}

// Transcribe validates, stages and transcribes without summarizing.
func (p *implPipeline) Transcribe(ctx context.Context, data []byte, filename string) (transcript string, err error) {
	defer func() {
		if err != nil {
			transcript, err = "", p.fail(ctx, filename, err)
		}
	}()

	suffix, err := p.validator.Validate(filename)
	if err != nil {
		return "", err
	}

	file, err := p.store.Stage(data, suffix)
	if err != nil {
		return "", err
	}
	defer p.release(ctx, file)

	return p.transcribe(ctx, file)
}

// Summarize applies the same timeout and output policies as Run to a
// caller-supplied transcript.
func (p *implPipeline) Summarize(ctx context.Context, transcript string) (res summarizer.Result, err error) {
	defer func() {
		if err != nil {
			res, err = summarizer.Result{}, p.fail(ctx, "transcript", err)
		}
	}()

	if strings.TrimSpace(transcript) == "" {
		return summarizer.Result{}, apperror.InvalidFormat("transcript is empty")
	}
	return p.summarize(ctx, transcript)
}

func (p *implPipeline) transcribe(ctx context.Context, file *staging.File) (string, error) {
	ctx, cancel := withTimeout(ctx, p.opts.TranscribeTimeout)
	defer cancel()

	start := time.Now()
	p.logger.Debug(ctx, "Transcribing %d bytes", file.Size())

	transcript, err := p.transcriber.Transcribe(ctx, file.Path())
	if err != nil {
		return "", classify(err, apperror.TranscriptionFailed)
	}

	p.logger.Debug(ctx, "Transcription took %s", time.Since(start).Round(time.Millisecond))
	return transcript, nil
}

func (p *implPipeline) summarize(ctx context.Context, transcript string) (summarizer.Result, error) {
	ctx, cancel := withTimeout(ctx, p.opts.SummarizeTimeout)
	defer cancel()

	res, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		var ae *apperror.Error
		if !p.opts.DegradeActionItems || !errors.As(err, &ae) || ae.Operation != summarizer.OpActionItems {
			return summarizer.Result{}, classify(err, func(err error) *apperror.Error {
				return apperror.SummarizationFailed(summarizer.OpBoth, err)
			})
		}
		p.logger.Warn(ctx, "Action item extraction failed, continuing without action items: %v", p.redact(err))
		res.ActionItems = []string{}
	}

	if res.SummaryUnavailable && !p.opts.AllowEmptySummary {
		return summarizer.Result{}, apperror.SummarizationFailed(summarizer.OpSummary, summarizer.ErrSummaryUnavailable)
	}
	if res.ActionItems == nil {
		res.ActionItems = []string{}
	}
	return res, nil
}

// release is the single exit point for a staged file. A failed removal is
// logged and left for Sweep.
func (p *implPipeline) release(ctx context.Context, file *staging.File) {
	if err := p.store.Release(file); err != nil {
		p.logger.Warn(ctx, "Failed to release staged audio: %v", p.redact(err))
	}
}

func (p *implPipeline) fail(ctx context.Context, filename string, err error) error {
	err = p.redact(err)
	if code, _ := apperror.CodeOf(err); code.ClientError() {
		p.logger.Warn(ctx, "Rejected %s: %v", filename, err)
	} else {
		p.logger.Error(ctx, "Processing %s failed: %v", filename, err)
	}
	return err
}

func (p *implPipeline) redact(err error) error {
	return apperror.Redact(err, append([]string{p.store.Dir()}, p.opts.Secrets...)...)
}

// classify keeps an already classified error and wraps anything else.
func classify(err error, wrap func(error) *apperror.Error) error {
	if _, ok := apperror.CodeOf(err); ok {
		return err
	}
	return wrap(err)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
