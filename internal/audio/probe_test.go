package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
)

type fakeExecutor struct {
	out  []byte
	err  error
	name string
	args []string
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) ([]byte, error) {
	f.name = name
	f.args = args
	return f.out, f.err
}

// minimalWAV returns a 44-byte header followed by a few silent 16-bit mono samples.
func minimalWAV() []byte {
	samples := make([]byte, 32)
	buf := make([]byte, 0, 44+len(samples))
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+len(samples)))
	buf = append(buf, "WAVEfmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 1)     // PCM
	buf = binary.LittleEndian.AppendUint16(buf, 1)     // mono
	buf = binary.LittleEndian.AppendUint32(buf, 16000) // sample rate
	buf = binary.LittleEndian.AppendUint32(buf, 32000) // byte rate
	buf = binary.LittleEndian.AppendUint16(buf, 2)     // block align
	buf = binary.LittleEndian.AppendUint16(buf, 16)    // bits per sample
	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(samples)))
	return append(buf, samples...)
}

func TestFFprobeProber(t *testing.T) {
	tests := []struct {
		name     string
		out      string
		err      error
		wantCode apperror.Code
		wantOK   bool
	}{
		{
			name:   "audio stream present",
			out:    `{"streams":[{"codec_type":"video","codec_name":"png"},{"codec_type":"audio","codec_name":"mp3"}]}`,
			wantOK: true,
		},
		{
			name:     "no audio stream",
			out:      `{"streams":[{"codec_type":"video","codec_name":"h264"}]}`,
			wantCode: apperror.CodeInvalidFormat,
		},
		{
			name:     "ffprobe rejects data",
			err:      errors.New("command 'ffprobe' failed: exit status 1"),
			wantCode: apperror.CodeInvalidFormat,
		},
		{
			name:     "garbage output",
			out:      `not json`,
			wantCode: apperror.CodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &fakeExecutor{out: []byte(tt.out), err: tt.err}
			p, err := NewProber("ffprobe", afero.NewMemMapFs(), ex, "/usr/bin/ffprobe")
			require.NoError(t, err)

			err = p.Probe(context.Background(), "/tmp/meeting.mp3")
			assert.Equal(t, "/usr/bin/ffprobe", ex.name)
			assert.Equal(t, "/tmp/meeting.mp3", ex.args[len(ex.args)-1])
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			code, ok := apperror.CodeOf(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestFFprobeMissingBinaryIsNotAFormatError(t *testing.T) {
	ex := &fakeExecutor{err: fmt.Errorf("command 'ffprobe' failed: %w", exec.ErrNotFound)}
	p, err := NewProber("ffprobe", nil, ex, "ffprobe")
	require.NoError(t, err)

	err = p.Probe(context.Background(), "/tmp/a.wav")
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperror.ErrInvalidFormat))
}

func TestSniffProber(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/staging/good.wav", minimalWAV(), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/staging/fake.wav", []byte("%PDF-1.7 definitely not audio"), 0o600))

	p, err := NewProber("sniff", fs, nil, "")
	require.NoError(t, err)

	assert.NoError(t, p.Probe(context.Background(), "/staging/good.wav"))

	err = p.Probe(context.Background(), "/staging/fake.wav")
	assert.True(t, errors.Is(err, apperror.ErrInvalidFormat))

	err = p.Probe(context.Background(), "/staging/missing.wav")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, apperror.ErrInvalidFormat))
}

func TestNoopAndUnknownProber(t *testing.T) {
	p, err := NewProber("none", nil, nil, "")
	require.NoError(t, err)
	assert.NoError(t, p.Probe(context.Background(), "anything"))

	_, err = NewProber("magic", nil, nil, "")
	assert.Error(t, err)
}
