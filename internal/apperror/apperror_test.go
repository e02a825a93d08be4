package apperror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("run: %w", TranscriptionFailed(errors.New("model crashed")))

	assert.True(t, errors.Is(err, ErrTranscriptionFailed))
	assert.False(t, errors.Is(err, ErrSummarizationFailed))
	assert.False(t, errors.Is(err, ErrInvalidFormat))
}

func TestUnwrapKeepsCause(t *testing.T) {
	err := SummarizationFailed("summary", context.DeadlineExceeded)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "summarization failed (summary): context deadline exceeded", err.Error())
}

func TestCodeOf(t *testing.T) {
	code, ok := CodeOf(fmt.Errorf("wrapped: %w", InvalidFormat("unsupported extension %q", ".ogg")))
	assert.True(t, ok)
	assert.Equal(t, CodeInvalidFormat, code)

	_, ok = CodeOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestClientError(t *testing.T) {
	assert.True(t, CodeInvalidFormat.ClientError())
	assert.False(t, CodeStagingFailed.ClientError())
	assert.False(t, CodeTranscriptionFailed.ClientError())
	assert.False(t, CodeSummarizationFailed.ClientError())
}

func TestErrorWithoutMessage(t *testing.T) {
	assert.Equal(t, "STAGING_FAILED", (&Error{Code: CodeStagingFailed}).Error())
}

func TestRedactKeepsCodeAndChain(t *testing.T) {
	cause := fmt.Errorf("ffmpeg: /tmp/meetscribe/meeting-audio-1.wav: Invalid data (key sk-secret): %w", context.DeadlineExceeded)
	err := Redact(TranscriptionFailed(cause), "/tmp/meetscribe", "sk-secret")

	assert.Equal(t, "transcription failed: ffmpeg: [redacted]/meeting-audio-1.wav: Invalid data (key [redacted]): context deadline exceeded", err.Error())
	assert.True(t, errors.Is(err, ErrTranscriptionFailed))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRedactUntouched(t *testing.T) {
	err := errors.New("nothing to hide")
	assert.Same(t, err, Redact(err, "/tmp"))
	assert.Nil(t, Redact(nil, "x"))
}
