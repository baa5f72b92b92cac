package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	// Marshal first so a failure can still produce a clean 500
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteMessage writes a {"message": ...} body.
func (r Responder) WriteMessage(w http.ResponseWriter, status int, message string) {
	r.WriteJSONStatus(w, status, MessageResponse{Message: message})
}

// WriteError logs the full error chain and writes only the client-safe message.
// Errors that are not *errs.ApiErr are treated as database failures.
func (r Responder) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		apiErr = errs.NewDatabaseError("handle", req.URL.Path, err)
	}

	var event *zerolog.Event
	switch {
	case errs.IsInvalidInputError(apiErr):
		event = r.logger.Warn()
	case errs.IsTransactionFailedError(apiErr):
		event = r.logger.Error().Bool("rolledBack", true)
	case errs.IsDatabaseQueryError(apiErr), apiErr.StatusCode >= http.StatusInternalServerError:
		event = r.logger.Error()
	default:
		event = r.logger.Warn()
	}
	event.
		Str("request_id", ctxGetRequestID(req.Context())).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", apiErr.StatusCode).
		Str("field", apiErr.Field).
		Msg(apiErr.GetFullError())

	r.WriteJSONStatus(w, apiErr.StatusCode, ErrorResponse{Error: apiErr.Error()})
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
