package service

import (
	"errors"

	"github.com/MKhiriev/go-seal-doc/internal/crypto"
)

var (
	// ErrNotFound is returned when a document does not exist, was purged or
	// has expired. The three cases are indistinguishable to callers.
	ErrNotFound = errors.New("document not found")

	// ErrAuthFailure is returned when a document cannot be opened with the
	// given password.
	ErrAuthFailure = crypto.ErrAuthFailure

	// ErrAllocationExhausted is returned when every identifier candidate
	// collided. Retrying the whole request is safe.
	ErrAllocationExhausted = errors.New("failed to allocate a unique document id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrRateLimited is returned by the client when the server throttled the
	// request.
	ErrRateLimited = errors.New("too many requests, try again later")

	// ErrServerUnavailable wraps every other transport or server failure seen
	// by the client.
	ErrServerUnavailable = errors.New("server request failed")
)
