package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseErrorHidesCause(t *testing.T) {
	cause := errors.New("Error 1146: Table 'portfolio.projects' doesn't exist")
	err := NewDatabaseError("find", "projects", cause)

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "Database query error", err.Error())
	assert.True(t, IsDatabaseQueryError(err))
	assert.Contains(t, err.GetFullError(), "failed to find projects")
	assert.Contains(t, err.GetFullError(), "doesn't exist")
}

func TestTransactionFailedError(t *testing.T) {
	cause := NewDatabaseError("insert", "project technologies", errors.New("deadlock"))
	err := NewTransactionFailedError("link technologies", cause)

	assert.Equal(t, "Database query error", err.Error())
	assert.True(t, IsTransactionFailedError(err))
	assert.False(t, IsTransactionFailedError(cause))
	assert.Contains(t, err.GetFullError(), "deadlock")
}

func TestInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("technologies", "must be an array")

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Invalid input", err.Error())
	assert.Equal(t, "technologies", err.Field)
	assert.True(t, IsInvalidInputError(err))

	malformed := NewMalformedPayloadError("JSON", errors.New("unexpected EOF"))
	assert.True(t, IsInvalidInputError(malformed))
	assert.Contains(t, malformed.GetFullError(), "unexpected EOF")
}
