package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
)

const summaryPrompt = `Summarize the following meeting transcript in a concise way, highlighting the key points discussed:

%s

Summary:`

const actionItemsPrompt = `Extract action items from the following meeting transcript. List only the specific tasks that need to be done:

%s

Action Items:`

// ErrSummaryUnavailable is the cause attached when an empty summary is
// promoted to a failure by the caller.
var ErrSummaryUnavailable = errors.New("model produced no summary")

// SummaryPrompt renders the summary request for transcript.
func SummaryPrompt(transcript string) string {
	return fmt.Sprintf(summaryPrompt, transcript)
}

// ActionItemsPrompt renders the action-item extraction request for transcript.
func ActionItemsPrompt(transcript string) string {
	return fmt.Sprintf(actionItemsPrompt, transcript)
}

// Summarize issues the summary and action-item prompts concurrently and joins
// both answers. If only the action-item request faults, the returned Result
// still carries the summary next to the SUMMARIZATION_FAILED error.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (Result, error) {
	start := time.Now()

	var (
		wg                   sync.WaitGroup
		summary, rawItems    string
		summaryErr, itemsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		summary, summaryErr = s.generator.Generate(ctx, SummaryPrompt(transcript))
	}()
	go func() {
		defer wg.Done()
		rawItems, itemsErr = s.generator.Generate(ctx, ActionItemsPrompt(transcript))
	}()
	wg.Wait()

	switch {
	case summaryErr != nil && itemsErr != nil:
		return Result{ActionItems: []string{}}, apperror.SummarizationFailed(OpBoth, errors.Join(summaryErr, itemsErr))
	case summaryErr != nil:
		return Result{ActionItems: []string{}}, apperror.SummarizationFailed(OpSummary, summaryErr)
	}

	res := Result{
		Summary:     strings.TrimSpace(summary),
		ActionItems: []string{},
	}
	res.SummaryUnavailable = res.Summary == ""

	if itemsErr != nil {
		return res, apperror.SummarizationFailed(OpActionItems, itemsErr)
	}

	res.ActionItems = ParseActionItems(rawItems)
	s.logger.Info(ctx, "Summarized transcript (%d chars) in %s: %d action items",
		len(transcript), time.Since(start).Round(time.Millisecond), len(res.ActionItems))
	return res, nil
}
