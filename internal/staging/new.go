package staging

import (
	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

// filePrefix marks files owned by this store so Sweep never touches anything else.
const filePrefix = "meeting-audio-"

type implStore struct {
	fs     afero.Fs
	dir    string
	logger logger.Logger
}

// New creates a Store rooted at dir. Transcription backends read staged files
// by path, so production callers pass afero.NewOsFs().
func New(fs afero.Fs, dir string, log logger.Logger) Store {
	return &implStore{
		fs:     fs,
		dir:    dir,
		logger: log,
	}
}

func (s *implStore) Dir() string {
	return s.dir
}
