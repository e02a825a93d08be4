package processor

import (
	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
	"github.com/nguyentantai21042004/meetscribe/internal/meeting"
	"github.com/nguyentantai21042004/meetscribe/internal/pipeline"
	"github.com/nguyentantai21042004/meetscribe/internal/report"
)

// Dirs are the folders originals are moved to once handled.
type Dirs struct {
	Archived string
	// Rejected holds files the pipeline refused as INVALID_FORMAT.
	Rejected string
	// Failed holds files whose processing hit a server-side fault.
	Failed string
}

type implProcessor struct {
	fs       afero.Fs
	pipeline pipeline.Pipeline
	reports  report.Writer
	meetings meeting.Repository
	dirs     Dirs
	logger   logger.Logger
}

// New creates a Processor. meetings may be nil when persistence is disabled.
func New(
	fs afero.Fs,
	pipe pipeline.Pipeline,
	reports report.Writer,
	meetings meeting.Repository,
	dirs Dirs,
	log logger.Logger,
) Processor {
	return &implProcessor{
		fs:       fs,
		pipeline: pipe,
		reports:  reports,
		meetings: meetings,
		dirs:     dirs,
		logger:   log,
	}
}
