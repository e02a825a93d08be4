package transcriber

import "context"

// Transcriber turns a staged audio file into its verbatim transcript
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
	// Warmup performs any one-time initialization (model load) ahead of the first request.
	Warmup(ctx context.Context) error
}

// Model is a loaded speech-recognition model. Implementations must be safe for
// concurrent Transcribe calls.
type Model interface {
	Transcribe(ctx context.Context, path string, params Params) (string, error)
}

// ModelLoader loads a Model. It is called at most once per process.
type ModelLoader func(ctx context.Context) (Model, error)

// Params are the decoding parameters. The defaults disable sampling so identical
// audio always yields an identical transcript.
type Params struct {
	Language    string
	Temperature float32
	BeamSize    int
	BestOf      int
	Threads     int
	Prompt      string
}

// DefaultParams returns greedy, fixed-language decoding parameters.
func DefaultParams(language string) Params {
	if language == "" {
		language = "en"
	}
	return Params{
		Language:    language,
		Temperature: 0,
		BeamSize:    1,
		BestOf:      1,
	}
}
