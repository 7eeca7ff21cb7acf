package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-seal-doc/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := decodeAPIError(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrBadRequest, apiErr)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %w", ErrPayloadTooLarge, apiErr)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrTooManyRequests, apiErr)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrInternalServerError, apiErr)
	default:
		return fmt.Errorf("%w: %w", ErrUnexpectedStatus, apiErr)
	}
}

// decodeAPIError reads the structured error body, falling back to the raw
// body or the status text for non-JSON responses.
func decodeAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode()}

	var body models.APIError
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Code = body.Code
		apiErr.Message = body.Error
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(resp.Body()))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}
	return apiErr
}
