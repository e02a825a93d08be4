package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// moveTo moves a file into dir, adding a timestamp when the name is taken.
func (p *implProcessor) moveTo(ctx context.Context, srcPath, dir string) (string, error) {
	if err := p.fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	filename := filepath.Base(srcPath)
	destPath := filepath.Join(dir, filename)
	if exists, _ := afero.Exists(p.fs, destPath); exists {
		ext := filepath.Ext(filename)
		destPath = filepath.Join(dir, fmt.Sprintf("%s_%s%s",
			strings.TrimSuffix(filename, ext), time.Now().Format("20060102-150405.000"), ext))
	}

	p.logger.Debug(ctx, "Moving %s -> %s", srcPath, destPath)

	if err := p.fs.Rename(srcPath, destPath); err != nil {
		return "", fmt.Errorf("move %s: %w", filename, err)
	}
	return destPath, nil
}
