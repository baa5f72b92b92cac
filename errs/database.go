package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrDatabaseQuery     = errors.New("Database query error")
	ErrTransactionFailed = errors.New("transaction failed")
)

// NewDatabaseError wraps any failed statement. Every storage failure surfaces as the same generic 500;
// the operation, entity and driver error are only logged.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    fmt.Sprintf("failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

// NewTransactionFailedError wraps a failure inside a multi-statement operation that was rolled back.
func NewTransactionFailedError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    fmt.Sprintf("transaction rolled back during %s", operation),
		Cause:      fmt.Errorf("%w: %w", ErrTransactionFailed, cause),
		Field:      "transaction",
	}
}

func IsDatabaseQueryError(err error) bool {
	return errors.Is(err, ErrDatabaseQuery)
}

func IsTransactionFailedError(err error) bool {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) && apiErr.Cause != nil {
		return errors.Is(apiErr.Cause, ErrTransactionFailed)
	}
	return errors.Is(err, ErrTransactionFailed)
}
