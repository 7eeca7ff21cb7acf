// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-seal-doc/internal/adapter"
	"github.com/MKhiriev/go-seal-doc/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	hasBody := errors.As(err, &apiErr)

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return ErrNotFound

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrAuthFailure

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrRateLimited

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return &validators.ValidationError{
			Reason:  validators.ReasonTooLarge,
			Message: "Content is too large for the server.",
		}

	case errors.Is(err, adapter.ErrBadRequest) && hasBody && apiErr.Code != "":
		return &validators.ValidationError{
			Reason:  validators.Reason(apiErr.Code),
			Message: apiErr.Message,
		}
	}

	return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
}
