package errors

import stderrors "errors"

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the user-defined error message.
	// E.g. "order has no stock reference".
	Message string

	// Code (required) is the error code string, see ErrorCode.
	Code string

	// Field (optional) is the related field the error occurred on, if any.
	Field string

	// Object (optional) is the related object the error occured on, if any.
	Object interface{}
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message, code, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// NewErrorDetailsWithObject creates a new ErrorDetails struct with an associated object.
func NewErrorDetailsWithObject(message, code, field string, object interface{}) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
		Object:  object,
	}
}

// Error() is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	return e.Message
}

// ErrorCodeEquals checks whether a given `error`, or any error it wraps, has a
// specific code. The outermost coded error in the chain decides.
func ErrorCodeEquals(err error, code string) bool {
	for err != nil {
		switch e := err.(type) {
		case *ErrorDetails:
			return e.Code == code
		case *ErrorTracer:
			if e.Code != "" {
				return e.Code.String() == code
			}
		}
		err = stderrors.Unwrap(err)
	}

	return false
}
