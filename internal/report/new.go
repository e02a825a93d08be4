package report

import (
	"fmt"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

const (
	FormatDocx = "docx"
	FormatJSON = "json"
)

type implWriter struct {
	outputDir string
	formats   []string
	logger    logger.Logger
}

// New creates a Writer producing the given formats in outputDir. No formats
// means both docx and json.
func New(outputDir string, formats []string, log logger.Logger) (Writer, error) {
	if len(formats) == 0 {
		formats = []string{FormatDocx, FormatJSON}
	}
	for _, f := range formats {
		if f != FormatDocx && f != FormatJSON {
			return nil, fmt.Errorf("report: unknown format %q (supported: docx, json)", f)
		}
	}
	return &implWriter{
		outputDir: outputDir,
		formats:   formats,
		logger:    log,
	}, nil
}
