// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-seal-doc/models"
)

const (
	// IVSize is the GCM nonce length in bytes.
	IVSize = 12

	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16
)

// Encrypt seals plaintext with AES-256-GCM under key. A fresh random IV is
// drawn for every call and the tag is returned detached from the
// ciphertext.
func Encrypt(plaintext, key []byte) (models.Sealed, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.Sealed{}, err
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(randReader, iv); err != nil {
		return models.Sealed{}, fmt.Errorf("%w: %w", ErrEntropySource, err)
	}

	out := gcm.Seal(nil, iv, plaintext, nil)
	split := len(out) - TagSize

	return models.Sealed{
		Ciphertext: out[:split],
		IV:         iv,
		AuthTag:    out[split:],
	}, nil
}

// Decrypt verifies and opens sealed under key. The result is guaranteed to
// be valid UTF-8. Every failure is reported as [ErrAuthFailure].
func Decrypt(sealed models.Sealed, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, ErrAuthFailure
	}
	if len(sealed.IV) != IVSize || len(sealed.AuthTag) != TagSize {
		return nil, ErrAuthFailure
	}

	combined := make([]byte, 0, len(sealed.Ciphertext)+TagSize)
	combined = append(combined, sealed.Ciphertext...)
	combined = append(combined, sealed.AuthTag...)

	plaintext, err := gcm.Open(nil, sealed.IV, combined, nil)
	if err != nil || !utf8.Valid(plaintext) {
		return nil, ErrAuthFailure
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes", ErrInvalidKDFParams, KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCMWithTagSize(block, TagSize)
}
