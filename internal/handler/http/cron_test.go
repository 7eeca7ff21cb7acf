package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-seal-doc/models"
)

func TestCleanup_RequiresBearerSecret(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong secret", header: "Bearer nope"},
		{name: "secret without scheme", header: testCronSecret},
		{name: "secret with suffix", header: "Bearer " + testCronSecret + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, "/api/cron/cleanup", nil, "Authorization", tt.header)
			assertAPIError(t, rec, http.StatusUnauthorized, CodeUnauthorized)
		})
	}
}

func TestCleanup_ReportsDeletedCount(t *testing.T) {
	srv := newTestServer(t, testConfig())
	srv.createPlaintext(t, "still live")

	rec := srv.do(t, http.MethodGet, "/api/cron/cleanup", nil, "Authorization", "Bearer "+testCronSecret)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.PurgeResponse{Deleted: 0}, decodeBody[models.PurgeResponse](t, rec))
}

func TestCleanup_PurgeFailure(t *testing.T) {
	srv := newTestServer(t, testConfig())
	srv.services.DocumentService = stubDocumentService{err: errors.New("disk full")}

	rec := srv.do(t, http.MethodGet, "/api/cron/cleanup", nil, "Authorization", "Bearer "+testCronSecret)

	assertAPIError(t, rec, http.StatusInternalServerError, CodeServerError)
}
