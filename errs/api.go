package errs

import (
	"errors"
	"fmt"
)

type ApiErr struct {
	StatusCode int
	err        error
	Details    string // Additional details about the error, logged but never sent to the client
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// Error returns the client-facing message only; Details and Cause stay server-side.
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// GetFullError returns a recursive error message including details and all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		var causeErr *ApiErr
		if errors.As(e.Cause, &causeErr) {
			msg = fmt.Sprintf("%s -> %s", msg, causeErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}
