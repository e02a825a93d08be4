package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// stderr beyond this is cut; whisper and ffmpeg are chatty.
const maxStderr = 2048

// absPath matches file paths with at least one directory component.
var absPath = regexp.MustCompile(`(?:[A-Za-z]:)?[/\\](?:[^\s'"/\\:]+[/\\])+([^\s'"/\\:]+)`)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Errors only name the program; install locations stay out of them.
		prog := filepath.Base(name)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("command '%s' aborted: %w", prog, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("command '%s' could not start: %s", prog, stripPaths(err.Error()))
		}
		// Include stderr in error message for debugging
		stderrStr := tail(stripPaths(strings.TrimSpace(stderr.String())), maxStderr)
		if stderrStr != "" {
			return nil, fmt.Errorf("command '%s' failed: %w\nstderr: %s", prog, err, stderrStr)
		}
		return nil, fmt.Errorf("command '%s' failed: %w", prog, err)
	}

	return stdout.Bytes(), nil
}

// stripPaths reduces every file path in s to its base name.
func stripPaths(s string) string {
	return absPath.ReplaceAllString(s, "$1")
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
