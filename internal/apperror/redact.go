package apperror

import "strings"

type redactedError struct {
	msg   string
	cause error
}

func (r *redactedError) Error() string { return r.msg }
func (r *redactedError) Unwrap() error { return r.cause }

// Redact replaces every occurrence of the given strings (staging paths,
// credentials) in err's message with "[redacted]". The code and the error chain
// are preserved so errors.Is and CodeOf keep working.
func Redact(err error, secrets ...string) error {
	if err == nil {
		return nil
	}

	if ae, ok := err.(*Error); ok {
		if ae.Cause == nil {
			return ae
		}
		out := *ae
		out.Cause = Redact(ae.Cause, secrets...)
		return &out
	}

	msg := err.Error()
	changed := false
	for _, s := range secrets {
		if s == "" || !strings.Contains(msg, s) {
			continue
		}
		msg = strings.ReplaceAll(msg, s, "[redacted]")
		changed = true
	}
	if !changed {
		return err
	}
	return &redactedError{msg: msg, cause: err}
}
