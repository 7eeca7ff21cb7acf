// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAuthFailure is the only error returned by decryption. Wrong
	// password, corrupted ciphertext, tampered tag and non UTF-8 output all
	// map to it.
	ErrAuthFailure = errors.New("authentication failed")

	// ErrInvalidKDFParams is returned for an empty password, a salt that is
	// not 16 bytes, or KDF parameters below the accepted minimum. It signals
	// a configuration defect and must not be retried.
	ErrInvalidKDFParams = errors.New("invalid key derivation parameters")

	// ErrInvalidCharset is returned when the requested length is below one or
	// the charset is empty, longer than 256 symbols or has duplicates.
	ErrInvalidCharset = errors.New("invalid length or charset")

	// ErrEntropySource wraps a failure of the operating system CSPRNG.
	ErrEntropySource = errors.New("secure random source failed")

	// ErrInvalidFingerprint is returned when a content fingerprint is not 64
	// lowercase hex characters.
	ErrInvalidFingerprint = errors.New("invalid content fingerprint")

	// ErrMissingPepper is returned when no dedupe pepper is configured and
	// the unpeppered mode was not explicitly enabled.
	ErrMissingPepper = errors.New("dedupe pepper is not configured")
)
