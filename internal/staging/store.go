package staging

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
)

// Stage writes data to a fresh file named meeting-audio-<uuid><suffix>.
// O_EXCL makes a name collision fail loudly instead of sharing a file.
// A partially written file is removed before the error is returned.
func (s *implStore) Stage(data []byte, suffix string) (*File, error) {
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return nil, apperror.StagingFailed(stripPath(err))
	}

	path := filepath.Join(s.dir, filePrefix+uuid.New().String()+suffix)

	f, err := s.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, apperror.StagingFailed(stripPath(err))
	}

	_, writeErr := f.Write(data)
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		if rmErr := s.fs.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			s.logger.Warn(context.Background(), "Failed to remove partial staged file: %v", stripPath(rmErr))
		}
		return nil, apperror.StagingFailed(stripPath(err))
	}

	return &File{path: path, size: len(data)}, nil
}

// Release removes the staged file. Only the first call on a handle touches the
// filesystem; later calls, nil handles and already-missing files succeed silently.
func (s *implStore) Release(f *File) error {
	if f == nil || f.released.Swap(true) {
		return nil
	}

	if err := s.fs.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}

	s.logger.Debug(context.Background(), "Cleaned up staged file: %s", filepath.Base(f.path))
	return nil
}

// Sweep removes staged files older than olderThan. Files not created by a
// Store are left alone.
func (s *implStore) Sweep(ctx context.Context, olderThan time.Duration) (int, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, e := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if e.IsDir() || !strings.HasPrefix(e.Name(), filePrefix) || e.ModTime().After(cutoff) {
			continue
		}
		if err := s.fs.Remove(filepath.Join(s.dir, e.Name())); err != nil && !os.IsNotExist(err) {
			s.logger.Warn(ctx, "Failed to sweep %s: %v", e.Name(), err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info(ctx, "Swept %d leftover staged files from %s", removed, s.dir)
	}
	return removed, nil
}

// stripPath drops the file name from filesystem errors so callers never see
// staging locations.
func stripPath(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
