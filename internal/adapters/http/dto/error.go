// Package dto holds the JSON shapes written by the inbound HTTP adapter.
package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/graceful-shutdown/internal/ports"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from an error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := errorToStatus(err)

	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
}

// WriteErrorResponse writes an RFC 9457 error response for the given error.
// It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// errorToStatus maps sentinel errors to HTTP status codes.
func errorToStatus(err error) int {
	switch {
	case errors.Is(err, ports.ErrShuttingDown):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
