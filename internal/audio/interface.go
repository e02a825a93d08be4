package audio

import "context"

// Validator gates uploads on their declared filename before any bytes are touched
type Validator interface {
	// Validate returns the lower-cased suffix of filename, or an INVALID_FORMAT error.
	Validate(filename string) (string, error)
	Allowed(filename string) bool
}

// Prober checks that a file on disk actually holds a decodable audio stream
type Prober interface {
	Probe(ctx context.Context, path string) error
}
