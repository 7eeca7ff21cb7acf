// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself, before or instead of
// a service call. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not a JSON object
	// of the expected shape.
	ErrInvalidJSON = errors.New("invalid request body")

	// ErrBodyTooLarge is returned when the request body exceeds the
	// configured limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidCronSecret is returned by the cleanup endpoint when the
	// "Authorization" header does not carry the configured bearer secret.
	ErrInvalidCronSecret = errors.New("invalid `Authorization` header")

	// ErrRouteNotFound is returned for unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("route not found")

	// ErrRateLimited is returned when a client exceeded its request budget.
	ErrRateLimited = errors.New("too many requests")
)

// Stable error codes of [models.APIError].
const (
	CodeInvalidFormat   = "invalid_format"
	CodeTooLarge        = "too_large"
	CodeNotFound        = "not_found"
	CodeInvalidPassword = "invalid_password"
	CodeUnauthorized    = "unauthorized"
	CodeRateLimited     = "rate_limited"
	CodeServerError     = "server_error"
)
