package audio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
	"github.com/nguyentantai21042004/meetscribe/pkg/executor"
)

// NewProber builds the prober named by mode: "ffprobe", "sniff" or "none".
func NewProber(mode string, fs afero.Fs, ex executor.Executor, ffprobePath string) (Prober, error) {
	switch mode {
	case "ffprobe":
		return &ffprobeProber{executor: ex, binary: ffprobePath}, nil
	case "sniff":
		return &sniffProber{fs: fs}, nil
	case "none", "":
		return noopProber{}, nil
	default:
		return nil, fmt.Errorf("unknown probe mode %q", mode)
	}
}

type ffprobeProber struct {
	executor executor.Executor
	binary   string
}

type ffprobeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
	} `json:"streams"`
}

// Probe asks ffprobe for the stream list and requires at least one audio stream.
// A missing ffprobe binary or a cancelled context is an environment fault, not a
// format problem, and is returned unclassified.
func (p *ffprobeProber) Probe(ctx context.Context, path string) error {
	out, err := p.executor.Execute(ctx, p.binary,
		"-v", "error",
		"-show_streams",
		"-of", "json",
		path,
	)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || ctx.Err() != nil {
			return fmt.Errorf("ffprobe: %w", err)
		}
		return apperror.InvalidFormat("invalid audio file: no decodable stream")
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return apperror.InvalidFormat("invalid audio file: unreadable probe output")
	}
	for _, s := range probe.Streams {
		if s.CodecType == "audio" {
			return nil
		}
	}
	return apperror.InvalidFormat("invalid audio file: no audio stream")
}

type sniffProber struct {
	fs afero.Fs
}

// Probe inspects the file header and accepts anything whose detected type,
// or one of its parents, is audio/*.
func (p *sniffProber) Probe(ctx context.Context, path string) error {
	f, err := p.fs.Open(path)
	if err != nil {
		return fmt.Errorf("open staged audio: %w", err)
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return fmt.Errorf("detect audio type: %w", err)
	}
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "audio/") {
			return nil
		}
	}
	return apperror.InvalidFormat("invalid audio file: detected %s", mt.String())
}

type noopProber struct{}

func (noopProber) Probe(context.Context, string) error { return nil }
