package httpapi

import (
	"context"
	"net/http"
)

// Server exposes the pipeline over HTTP.
type Server interface {
	Handler() http.Handler
	// Run serves until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error
}
