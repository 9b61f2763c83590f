package errors

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// ErrorTracer carries an error together with the stack it was raised on.
// A non-empty Code classifies the failure for ErrorCodeEquals.
type ErrorTracer struct {
	Message string
	Code    ErrorCode
	Err     error
}

// StackTracer is an interface that requires a StackTrace method.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// TracerFromError creates a new ErrorTracer from an existing error, preserving the stack trace.
func TracerFromError(err error) *ErrorTracer {
	return &ErrorTracer{
		Message: err.Error(),
		Err:     withStack(err),
	}
}

// Wrap classifies err under code. The underlying error stays reachable through errors.Is and errors.As.
func Wrap(err error, code ErrorCode, message string) *ErrorTracer {
	return &ErrorTracer{
		Message: message + ": " + err.Error(),
		Code:    code,
		Err:     withStack(err),
	}
}

func withStack(err error) error {
	var tracer StackTracer
	if stderrors.As(err, &tracer) {
		return err
	}
	return errors.WithStack(err)
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack trace of the underlying error if it implements StackTracer.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	var tracer StackTracer
	if stderrors.As(e.Err, &tracer) {
		return tracer.StackTrace()
	}
	return nil
}
