package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

type call struct {
	name string
	args []string
}

type recordingExecutor struct {
	calls   []call
	outputs map[string][]byte
	errs    map[string]error
}

func (r *recordingExecutor) Execute(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, call{name: name, args: args})
	return r.outputs[name], r.errs[name]
}

func argAfter(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func stubLookPath(t *testing.T) {
	t.Helper()
	orig := lookPath
	lookPath = func(file string) (string, error) { return "/usr/local/bin/" + filepath.Base(file), nil }
	t.Cleanup(func() { lookPath = orig })
}

func TestCLIModelTranscribe(t *testing.T) {
	ex := &recordingExecutor{outputs: map[string][]byte{
		"whisper-cli": []byte(" We will ship by Friday.\n [BLANK_AUDIO]\n Alice writes tests.\n\n"),
	}}
	m := &cliModel{
		opts:     CLIOptions{BinaryPath: "whisper-cli", ModelPath: "/models/ggml-base.en.bin", FFmpegPath: "ffmpeg"},
		executor: ex,
		logger:   logger.NewNop(),
	}

	params := DefaultParams("en")
	params.Threads = 4
	text, err := m.Transcribe(context.Background(), "/tmp/staging/meeting-audio-1.m4a", params)
	require.NoError(t, err)
	assert.Equal(t, "We will ship by Friday. Alice writes tests.", text)

	require.Len(t, ex.calls, 2)
	ffmpeg, whisper := ex.calls[0], ex.calls[1]

	assert.Equal(t, "ffmpeg", ffmpeg.name)
	assert.Equal(t, "/tmp/staging/meeting-audio-1.m4a", argAfter(ffmpeg.args, "-i"))
	assert.Equal(t, "16000", argAfter(ffmpeg.args, "-ar"))
	assert.Equal(t, "/tmp/staging/meeting-audio-1.16k.wav", ffmpeg.args[len(ffmpeg.args)-1])

	assert.Equal(t, "whisper-cli", whisper.name)
	assert.Equal(t, "/models/ggml-base.en.bin", argAfter(whisper.args, "-m"))
	assert.Equal(t, "/tmp/staging/meeting-audio-1.16k.wav", argAfter(whisper.args, "-f"))
	assert.Equal(t, "en", argAfter(whisper.args, "-l"))
	assert.Equal(t, "0", argAfter(whisper.args, "-tp"))
	assert.Equal(t, "1", argAfter(whisper.args, "-bs"))
	assert.Equal(t, "1", argAfter(whisper.args, "-bo"))
	assert.Equal(t, "4", argAfter(whisper.args, "-t"))
	assert.Contains(t, whisper.args, "-nt")
	assert.NotContains(t, whisper.args, "--prompt")
}

func TestCLIModelRemovesConvertedFile(t *testing.T) {
	dir := t.TempDir()
	staged := filepath.Join(dir, "meeting-audio-2.mp3")
	converted := filepath.Join(dir, "meeting-audio-2.16k.wav")
	require.NoError(t, os.WriteFile(converted, []byte("pcm"), 0o600))

	ex := &recordingExecutor{errs: map[string]error{"whisper-cli": errors.New("exit status 1")}}
	m := &cliModel{
		opts:     CLIOptions{BinaryPath: "whisper-cli", ModelPath: "m.bin", FFmpegPath: "ffmpeg"},
		executor: ex,
		logger:   logger.NewNop(),
	}

	_, err := m.Transcribe(context.Background(), staged, DefaultParams("en"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whisper transcribe")

	_, statErr := os.Stat(converted)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCLIModelFFmpegFailure(t *testing.T) {
	ex := &recordingExecutor{errs: map[string]error{"ffmpeg": errors.New("Invalid data found when processing input")}}
	m := &cliModel{
		opts:     CLIOptions{BinaryPath: "whisper-cli", ModelPath: "m.bin", FFmpegPath: "ffmpeg"},
		executor: ex,
		logger:   logger.NewNop(),
	}

	_, err := m.Transcribe(context.Background(), "/tmp/x.wav", DefaultParams("en"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ffmpeg convert audio")
	assert.Len(t, ex.calls, 1)
}

func TestCLILoader(t *testing.T) {
	stubLookPath(t)
	modelPath := filepath.Join(t.TempDir(), "ggml-base.en.bin")
	require.NoError(t, os.WriteFile(modelPath, []byte("weights"), 0o600))

	loader := NewCLILoader(CLIOptions{BinaryPath: "whisper-cli", ModelPath: modelPath, FFmpegPath: "ffmpeg"}, &recordingExecutor{}, logger.NewNop())
	model, err := loader(context.Background())
	require.NoError(t, err)

	cm := model.(*cliModel)
	assert.Equal(t, "/usr/local/bin/whisper-cli", cm.opts.BinaryPath)
	assert.Equal(t, "/usr/local/bin/ffmpeg", cm.opts.FFmpegPath)
}

func TestCLILoaderMissingModel(t *testing.T) {
	stubLookPath(t)
	loader := NewCLILoader(CLIOptions{BinaryPath: "whisper-cli", ModelPath: "/nonexistent/model.bin", FFmpegPath: "ffmpeg"}, &recordingExecutor{}, logger.NewNop())

	_, err := loader(context.Background())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "model file"))
}

func TestBytesToFloat32(t *testing.T) {
	samples, err := bytesToFloat32([]byte{0x00, 0x00, 0x00, 0x40, 0x00, 0x80})
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0.5, -1}, samples)

	_, err = bytesToFloat32([]byte{0x01})
	assert.Error(t, err)
}
