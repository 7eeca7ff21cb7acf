package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		body   string
	}{
		{name: "object", data: map[string]string{"documentId": "AbCdEfGhJk23"}, status: http.StatusCreated, body: `{"documentId":"AbCdEfGhJk23"}`},
		{name: "error body", data: struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}{"Document not found.", "not_found"}, status: http.StatusNotFound, body: `{"error":"Document not found.","code":"not_found"}`},
		{name: "nil", data: nil, status: http.StatusOK, body: `null`},
		{name: "slice", data: []int{1, 2}, status: http.StatusOK, body: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.body), n)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestWriteJSON_UnencodableData(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}
