package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/service"
	"github.com/MKhiriev/go-seal-doc/internal/utils"
	"github.com/MKhiriev/go-seal-doc/internal/validators"
	"github.com/MKhiriev/go-seal-doc/models"
)

type errorResponse struct {
	status  int
	code    string
	message string
}

var errorResponseMap = map[error]errorResponse{
	ErrInvalidJSON:       {http.StatusBadRequest, CodeInvalidFormat, "Invalid request body."},
	ErrBodyTooLarge:      {http.StatusRequestEntityTooLarge, CodeTooLarge, "Request body is too large."},
	ErrInvalidCronSecret: {http.StatusUnauthorized, CodeUnauthorized, "Unauthorized."},
	ErrRouteNotFound:     {http.StatusNotFound, CodeNotFound, "Not found."},
	ErrRateLimited:       {http.StatusTooManyRequests, CodeRateLimited, "Too many requests. Please slow down."},

	service.ErrNotFound:            {http.StatusNotFound, CodeNotFound, "Document not found."},
	service.ErrAuthFailure:         {http.StatusUnauthorized, CodeInvalidPassword, "Invalid password or data."},
	service.ErrAllocationExhausted: {http.StatusInternalServerError, CodeServerError, "Failed to generate a unique document ID. Please try again."},
}

var internalError = errorResponse{http.StatusInternalServerError, CodeServerError, "Internal server error."}

// responseFromError classifies err. Validation errors carry their own reason
// and message; anything unknown becomes a generic server error.
func responseFromError(err error) errorResponse {
	if vErr, ok := validators.AsValidationError(err); ok {
		return errorResponse{http.StatusBadRequest, string(vErr.Reason), vErr.Message}
	}

	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return internalError
}

// writeError logs err and writes its [models.APIError] body.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Str("code", resp.code).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.APIError{Error: resp.message, Code: resp.code}, resp.status); wErr != nil {
		log.Err(wErr).Str("func", fn).Msg("failed to write error response")
	}
}
