package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
	"github.com/nguyentantai21042004/meetscribe/internal/meeting"
	"github.com/nguyentantai21042004/meetscribe/internal/report"
)

// Process runs one dropped recording through the pipeline, writes its report,
// stores the meeting and moves the original out of the input folder.
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()
	filename := filepath.Base(audioPath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting meeting processing: %s", filename)
	p.logger.Info(ctx, "========================================")

	data, err := afero.ReadFile(p.fs, audioPath)
	if err != nil {
		return fmt.Errorf("read recording: %w", err)
	}
	p.logger.Debug(ctx, "Read %s (%s)", filename, humanize.IBytes(uint64(len(data))))

	// Step 1: Transcribe and summarize
	res, err := p.pipeline.Run(ctx, data, filename)
	if err != nil {
		p.quarantine(ctx, audioPath, err)
		return fmt.Errorf("pipeline: %w", err)
	}

	m := meeting.Meeting{
		ID:          uuid.New().String(),
		Title:       strings.TrimSuffix(filename, filepath.Ext(filename)),
		SourceFile:  filename,
		Transcript:  res.Transcript,
		Summary:     res.Summary,
		ActionItems: make([]meeting.ActionItem, 0, len(res.ActionItems)),
		CreatedAt:   startTime.UTC(),
	}
	for _, item := range res.ActionItems {
		m.ActionItems = append(m.ActionItems, meeting.ActionItem{Description: item, Status: meeting.StatusPending})
	}

	// Step 2: Write report files. Nothing is stored until they exist.
	paths, err := p.reports.Write(ctx, report.Report{
		ID:          m.ID,
		Title:       m.Title,
		SourceFile:  filename,
		CreatedAt:   m.CreatedAt,
		Transcript:  res.Transcript,
		Summary:     res.Summary,
		ActionItems: res.ActionItems,
	})
	if err != nil {
		p.quarantine(ctx, audioPath, err)
		return fmt.Errorf("write report: %w", err)
	}

	// Step 3: Persist the meeting
	if p.meetings != nil {
		if err := p.meetings.Save(ctx, &m); err != nil {
			p.logger.Warn(ctx, "Failed to save meeting %s: %v", filename, err)
		}
	}

	// Step 4: Move original recording to archived folder
	if _, err := p.moveTo(ctx, audioPath, p.dirs.Archived); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Action items: %d", len(res.ActionItems))
	p.logger.Info(ctx, "Reports: %s", strings.Join(paths, ", "))
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return nil
}

// quarantine moves a recording that could not be processed so the startup
// scan does not pick it up again. Cancelled runs stay in place for a retry.
func (p *implProcessor) quarantine(ctx context.Context, audioPath string, cause error) {
	if ctx.Err() != nil {
		return
	}

	dir := p.dirs.Failed
	if code, _ := apperror.CodeOf(cause); code.ClientError() {
		dir = p.dirs.Rejected
	}
	if dir == "" {
		return
	}

	if dest, err := p.moveTo(ctx, audioPath, dir); err != nil {
		p.logger.Warn(ctx, "Failed to quarantine %s: %v", audioPath, err)
	} else {
		p.logger.Info(ctx, "Moved %s to %s", filepath.Base(audioPath), dest)
	}
}
