package http

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/km-arc/go-options/framework/resolver"
)

// Response wraps http.ResponseWriter with Laravel-style helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// ── Errors ───────────────────────────────────────────────────────────────────

// Error sends {"message": message} with status.
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404. The router uses it for unmatched paths.
func (res *Response) NotFound(message ...string) {
	res.Error(http.StatusNotFound, first(message, "Not found."))
}

// ServerError sends 500. The router's recoverer uses it after a panic.
func (res *Response) ServerError(message ...string) {
	res.Error(http.StatusInternalServerError, first(message, "Server Error."))
}

// ResolutionError reports a failed option resolution.
// A *resolver.ResolutionError becomes 422 with the schema's diagnostic:
//
//	{"message": "The given options are invalid.", "errors": {"options": ["The required option \"q\" is missing."]}}
//
// Any other error (unreadable body, bad JSON) is a 400.
func (res *Response) ResolutionError(err error) {
	var resErr *resolver.ResolutionError
	if !errors.As(err, &resErr) {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}
	res.JSON(http.StatusUnprocessableEntity, envelope{
		"message": "The given options are invalid.",
		"errors":  map[string][]string{"options": {resErr.Message}},
	})
}

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
