package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-seal-doc/internal/service"
	"github.com/MKhiriev/go-seal-doc/internal/validators"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "invalid json", err: fmt.Errorf("%w: eof", ErrInvalidJSON), status: http.StatusBadRequest, code: CodeInvalidFormat},
		{name: "body too large", err: ErrBodyTooLarge, status: http.StatusRequestEntityTooLarge, code: CodeTooLarge},
		{name: "cron secret", err: ErrInvalidCronSecret, status: http.StatusUnauthorized, code: CodeUnauthorized},
		{name: "route", err: ErrRouteNotFound, status: http.StatusNotFound, code: CodeNotFound},
		{name: "rate limited", err: ErrRateLimited, status: http.StatusTooManyRequests, code: CodeRateLimited},
		{name: "document missing", err: service.ErrNotFound, status: http.StatusNotFound, code: CodeNotFound},
		{name: "auth failure", err: fmt.Errorf("wrapped: %w", service.ErrAuthFailure), status: http.StatusUnauthorized, code: CodeInvalidPassword},
		{name: "allocation", err: service.ErrAllocationExhausted, status: http.StatusInternalServerError, code: CodeServerError},
		{
			name:   "validation",
			err:    &validators.ValidationError{Reason: validators.ReasonTooLarge, Message: "too big"},
			status: http.StatusBadRequest,
			code:   "too_large",
		},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: CodeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseFromError(tt.err)
			assert.Equal(t, tt.status, resp.status)
			assert.Equal(t, tt.code, resp.code)
			assert.NotEmpty(t, resp.message)
		})
	}
}

func TestWriteError_ValidationMessageIsPassedThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/documents", nil)

	writeError(rec, req, &validators.ValidationError{Reason: validators.ReasonEmpty, Message: "Markdown content cannot be empty."}, "test")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Markdown content cannot be empty.","code":"empty"}`, rec.Body.String())
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/documents/x", nil)

	writeError(rec, req, errors.New("pq: relation documents does not exist"), "test")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error.","code":"server_error"}`, rec.Body.String())
}
