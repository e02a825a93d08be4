package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (w *implWriter) Write(ctx context.Context, r Report) ([]string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if r.ActionItems == nil {
		r.ActionItems = []string{}
	}

	base := filepath.Join(w.outputDir, baseName(r))
	var written []string

	for _, format := range w.formats {
		path := base + "." + format
		var err error
		switch format {
		case FormatDocx:
			err = meetingToDocx(r, path)
		case FormatJSON:
			err = writeJSON(r, path)
		}
		if err != nil {
			return written, fmt.Errorf("write %s report: %w", format, err)
		}
		written = append(written, path)
	}

	w.logger.Info(ctx, "Report written: %s", strings.Join(written, ", "))
	return written, nil
}

func writeJSON(r Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// baseName derives the report file name from the source recording and its
// creation time so repeated uploads of one file never overwrite each other.
func baseName(r Report) string {
	name := strings.TrimSuffix(filepath.Base(r.SourceFile), filepath.Ext(r.SourceFile))
	if name == "" || name == "." {
		name = "meeting"
	}
	return name + "_" + r.CreatedAt.Format("20060102-150405")
}
