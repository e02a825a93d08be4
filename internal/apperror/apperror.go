// Package apperror is the closed failure taxonomy of the audio-to-insight
// pipeline. Every component reports exactly one of these codes.
package apperror

import (
	"errors"
	"fmt"
)

// Code identifies a failure kind.
type Code string

const (
	CodeInvalidFormat       Code = "INVALID_FORMAT"
	CodeStagingFailed       Code = "STAGING_FAILED"
	CodeTranscriptionFailed Code = "TRANSCRIPTION_FAILED"
	CodeSummarizationFailed Code = "SUMMARIZATION_FAILED"
)

// ClientError reports whether the failure was caused by the caller's input.
func (c Code) ClientError() bool {
	return c == CodeInvalidFormat
}

// Sentinels for errors.Is matching by code.
var (
	ErrInvalidFormat       = &Error{Code: CodeInvalidFormat}
	ErrStagingFailed       = &Error{Code: CodeStagingFailed}
	ErrTranscriptionFailed = &Error{Code: CodeTranscriptionFailed}
	ErrSummarizationFailed = &Error{Code: CodeSummarizationFailed}
)

// Error is a classified pipeline failure.
type Error struct {
	Code    Code
	Message string
	// Operation names the sub-request that failed, when a component issues
	// more than one (e.g. "summary" or "action_items").
	Operation string
	Cause     error
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

func (e *Error) WithOperation(op string) *Error {
	e.Operation = op
	return e
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Operation != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Operation)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf extracts the code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code, true
	}
	return "", false
}

// InvalidFormat builds a client-side rejection.
func InvalidFormat(format string, args ...interface{}) *Error {
	return New(CodeInvalidFormat, fmt.Sprintf(format, args...))
}

func StagingFailed(err error) *Error {
	return New(CodeStagingFailed, "staging failed").WithCause(err)
}

func TranscriptionFailed(err error) *Error {
	return New(CodeTranscriptionFailed, "transcription failed").WithCause(err)
}

func SummarizationFailed(op string, err error) *Error {
	return New(CodeSummarizationFailed, "summarization failed").WithOperation(op).WithCause(err)
}
