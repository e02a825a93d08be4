package executor

import "context"

// Executor runs external programs (whisper-cli, ffmpeg, ffprobe) and returns their stdout
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
}
