package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidInput is the only validation error clients ever see.
var ErrInvalidInput = errors.New("Invalid input")

// NewInvalidInputError reports a rejected request. The field and reason are kept for the server log.
func NewInvalidInputError(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidInput,
		Details:    fmt.Sprintf("invalid field %s: %s", field, reason),
		Field:      field,
	}
}

// NewMalformedPayloadError reports a body that could not be decoded.
func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidInput,
		Details:    fmt.Sprintf("malformed %s payload", payloadType),
		Cause:      cause,
		Field:      "payload",
	}
}

func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
