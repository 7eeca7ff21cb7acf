package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	srv := newTestServer(t, testConfig())

	srv.do(t, http.MethodGet, "/api/documents/AbCdEfGhJk23", nil)
	srv.do(t, http.MethodGet, "/api/documents/ZyXwVuTsRq98", nil)
	srv.do(t, http.MethodGet, "/api/version", nil)

	requests := srv.collectors.HTTPRequests
	assert.Equal(t, float64(2), testutil.ToFloat64(requests.WithLabelValues(http.MethodGet, "/api/documents/{id}", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(requests.WithLabelValues(http.MethodGet, "/api/version", "200")))
}

func TestWithMetrics_ServesExposition(t *testing.T) {
	srv := newTestServer(t, testConfig())
	srv.createPlaintext(t, "count me")

	rec := srv.do(t, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sealdoc_documents_created_total{flow="plaintext",result="ok"} 1`)
	assert.Contains(t, rec.Body.String(), "sealdoc_http_request_duration_seconds")
}

func TestWithMetrics_NilCollectorsPassThrough(t *testing.T) {
	h := &Handler{}
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	h.withMetrics(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
