// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/MKhiriev/go-seal-doc/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the PBKDF2 salt length in bytes.
	SaltSize = 16

	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// MinKDFIterations is the lowest PBKDF2 iteration count accepted for new
	// and stored documents.
	MinKDFIterations = 300_000

	// DefaultKDFIterations is the iteration count used for new documents.
	DefaultKDFIterations = 310_000

	// MaxKDFIterations bounds the work a single derivation may cost. Stored
	// parameters arrive from clients and are not trusted.
	MaxKDFIterations = 10_000_000
)

// DefaultKDFParams returns the parameters recorded on new documents.
func DefaultKDFParams() models.KDFParams {
	return models.KDFParams{
		Algorithm:  models.KDFAlgorithmPBKDF2SHA256,
		Iterations: DefaultKDFIterations,
		KeyLength:  KeySize,
	}
}

// ValidateKDFParams checks params against what this build can derive.
func ValidateKDFParams(params models.KDFParams) error {
	if params.Algorithm != models.KDFAlgorithmPBKDF2SHA256 {
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidKDFParams, params.Algorithm)
	}
	if params.Iterations < MinKDFIterations {
		return fmt.Errorf("%w: %d iterations is below %d", ErrInvalidKDFParams, params.Iterations, MinKDFIterations)
	}
	if params.Iterations > MaxKDFIterations {
		return fmt.Errorf("%w: %d iterations is above %d", ErrInvalidKDFParams, params.Iterations, MaxKDFIterations)
	}
	if params.KeyLength != KeySize {
		return fmt.Errorf("%w: key length must be %d bytes", ErrInvalidKDFParams, KeySize)
	}
	return nil
}

// DeriveKey stretches password with salt into a symmetric key using
// PBKDF2-HMAC-SHA256 and the given parameters.
func DeriveKey(password string, salt []byte, params models.KDFParams) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", ErrInvalidKDFParams)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrInvalidKDFParams, SaltSize, len(salt))
	}
	if err := ValidateKDFParams(params); err != nil {
		return nil, err
	}

	return pbkdf2.Key([]byte(password), salt, params.Iterations, params.KeyLength, sha256.New), nil
}

// GenerateSalt reads a fresh 16-byte salt from the CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropySource, err)
	}
	return salt, nil
}
