package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/portfolio-backend/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeBody decodes the JSON request body into dst and checks its `validate` tags.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewMalformedPayloadError("JSON", err)
	}

	if err := validate.Struct(dst); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return errs.NewInvalidInputError(fieldErrs[0].Field(), fieldErrs[0].Tag())
		}
		return errs.NewInvalidInputError("payload", err.Error())
	}
	return nil
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewInvalidInputError(name, "must be a positive integer")
	}
	return uint(id), nil
}

// pathName returns a decoded URL parameter. chi matches on the escaped path
// whenever one is kept, so names like "C%2B%2B" or "CI%2FCD" arrive still encoded.
func pathName(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw, nil
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", errs.NewInvalidInputError(name, "malformed escape sequence")
	}
	return decoded, nil
}
