package transcriber

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

func stagedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meeting-audio-remote.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3 fake mp3 payload"), 0o600))
	return path
}

func TestRemoteTranscribe(t *testing.T) {
	var gotAuth, gotModel, gotLanguage, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")
		if _, fh, err := r.FormFile("file"); err == nil {
			gotFilename = fh.Filename
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"  We will ship by Friday.  "}`))
	}))
	defer srv.Close()

	tr := NewRemote(RemoteOptions{BaseURL: srv.URL + "/v1", APIKey: "sk-test", Model: "whisper-1"}, logger.NewNop())

	text, err := tr.Transcribe(context.Background(), stagedFile(t))
	require.NoError(t, err)
	assert.Equal(t, "We will ship by Friday.", text)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "whisper-1", gotModel)
	assert.Equal(t, "en", gotLanguage)
	assert.Equal(t, ".mp3", filepath.Ext(gotFilename))
	assert.NoError(t, tr.Warmup(context.Background()))
}

func TestRemoteDistinguishesFaults(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "model api error",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"message":"model overloaded","type":"server_error"}}`,
			wantMsg: "model api error (status 500)",
		},
		{
			name:    "http error",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantMsg: "http error (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			tr := NewRemote(RemoteOptions{BaseURL: srv.URL + "/v1", APIKey: "sk-test", Model: "whisper-1"}, logger.NewNop())
			_, err := tr.Transcribe(context.Background(), stagedFile(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrTranscriptionFailed))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.NotContains(t, err.Error(), "sk-test")
		})
	}
}

func TestRemoteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr := NewRemote(RemoteOptions{BaseURL: url + "/v1", APIKey: "sk-test", Model: "whisper-1"}, logger.NewNop())
	_, err := tr.Transcribe(context.Background(), stagedFile(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrTranscriptionFailed))
	assert.Contains(t, err.Error(), "transport error")
}
