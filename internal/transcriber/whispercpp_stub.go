//go:build !whispercpp

package transcriber

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
	"github.com/nguyentantai21042004/meetscribe/pkg/executor"
)

// NewWhisperCppLoader is unavailable without the whispercpp build tag, which
// needs libwhisper and cgo.
func NewWhisperCppLoader(_ CLIOptions, _ executor.Executor, _ logger.Logger) ModelLoader {
	return func(context.Context) (Model, error) {
		return nil, fmt.Errorf("whispercpp engine not built in (rebuild with -tags whispercpp)")
	}
}
