package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/graceful-shutdown/internal/adapters/http/dto"
	"github.com/jsamuelsen11/graceful-shutdown/internal/ports"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "ErrShuttingDown maps to 503",
			err:        ports.ErrShuttingDown,
			wantStatus: http.StatusServiceUnavailable,
			wantTitle:  "Service Unavailable",
		},
		{
			name:       "wrapped ErrShuttingDown maps to 503",
			err:        fmt.Errorf("status: %w", ports.ErrShuttingDown),
			wantStatus: http.StatusServiceUnavailable,
			wantTitle:  "Service Unavailable",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/health", nil)
			resp := dto.NewErrorResponse(r, tt.err)

			if resp.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", resp.Status, tt.wantStatus)
			}
			if resp.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", resp.Title, tt.wantTitle)
			}
			if resp.Type != "about:blank" {
				t.Errorf("Type = %q, want %q", resp.Type, "about:blank")
			}
			if resp.Instance != "/health" {
				t.Errorf("Instance = %q, want %q", resp.Instance, "/health")
			}
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)

	dto.WriteErrorResponse(rec, r, ports.ErrShuttingDown)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Detail != "server in graceful shutdown mode" {
		t.Errorf("Detail = %q, want %q", body.Detail, "server in graceful shutdown mode")
	}
}
