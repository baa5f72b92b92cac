package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeErrorLog(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	responder := NewResponder(zerolog.New(&buf))
	req := httptest.NewRequest(http.MethodPost, "/project-technologies", nil)
	rec := httptest.NewRecorder()
	responder.WriteError(rec, req, err)

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return rec, entry
}

func TestWriteErrorInvalidInputLogsWarning(t *testing.T) {
	rec, entry := writeErrorLog(t, errs.NewInvalidInputError("technologies", "required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid input"}`, rec.Body.String())
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "technologies", entry["field"])
}

func TestWriteErrorTransactionFailureMarksRollback(t *testing.T) {
	cause := errs.NewDatabaseError("insert", "project technologies", errors.New("deadlock"))
	rec, entry := writeErrorLog(t, errs.NewTransactionFailedError("link technologies", cause))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Database query error"}`, rec.Body.String())
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, true, entry["rolledBack"])
	assert.Contains(t, entry["message"], "deadlock")
}

func TestWriteErrorWrapsPlainErrors(t *testing.T) {
	rec, entry := writeErrorLog(t, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Database query error"}`, rec.Body.String())
	assert.Equal(t, "error", entry["level"])
	assert.NotContains(t, entry, "rolledBack")
	assert.Contains(t, entry["message"], "connection refused")
}
