package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meetscribe/internal/config"
)

func TestRootCommandWiring(t *testing.T) {
	cmd := newRootCommand()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "watch", "process"}, names)

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "config.yaml", flag.DefValue)
}

func TestProcessRequiresOneFile(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"process"})
	cmd.SetOut(os.Stderr)
	cmd.SetErr(os.Stderr)
	assert.Error(t, cmd.Execute())
}

func TestMissingConfigFails(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "serve"})
	cmd.SetOut(os.Stderr)
	cmd.SetErr(os.Stderr)
	assert.Error(t, cmd.Execute())
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, ensureDirectories(filepath.Join(base, "a", "b"), ""))
	info, err := os.Stat(filepath.Join(base, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRedactionSet(t *testing.T) {
	cfg := &config.Config{}
	cfg.Gemini.APIKeys = "key-a, key-b"
	cfg.OpenAI.APIKey = "sk-remote"
	cfg.Whisper.ModelPath = "/srv/models/ggml-base.en.bin"
	cfg.Whisper.BinaryPath = "/opt/whisper/bin/whisper-cli"
	cfg.FFmpeg.BinaryPath = "ffmpeg"
	cfg.FFmpeg.ProbePath = "/usr/bin/ffprobe"

	assert.ElementsMatch(t, []string{
		"key-a",
		"key-b",
		"sk-remote",
		"/srv/models/ggml-base.en.bin",
		"/opt/whisper/bin/whisper-cli",
		"/usr/bin/ffprobe",
	}, redactionSet(cfg))
}
