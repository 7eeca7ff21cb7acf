// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// TimestampLayout is the fixed-width ISO-8601 UTC layout used for the
// created_at_iso column. Every value has the same length, so lexical order
// equals chronological order and the column can be compared as text.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// KDFAlgorithmPBKDF2SHA256 identifies PBKDF2-HMAC-SHA256 key derivation.
const KDFAlgorithmPBKDF2SHA256 = "pbkdf2-sha256"

// KDFParams describes how the symmetric key of a document was derived from
// its password. The parameters are persisted with every document so that a
// change of defaults never breaks decryption of older records.
type KDFParams struct {
	// Algorithm is the KDF identifier, currently always "pbkdf2-sha256".
	Algorithm string `json:"algorithm"`

	// Iterations is the PBKDF2 iteration count used at creation time.
	Iterations int `json:"iterations"`

	// KeyLength is the derived key length in bytes.
	KeyLength int `json:"keyLength"`
}

// EncryptedDocument is the only persisted entity. It never contains
// plaintext and is immutable once stored: there is no update operation,
// only create, read and purge.
//
// Binary fields are encoded as standard base64 when marshaled to JSON.
type EncryptedDocument struct {
	// ID is the public 12-symbol identifier of the document.
	ID string `json:"id"`

	// Ciphertext is the AES-GCM output without the authentication tag.
	Ciphertext []byte `json:"ciphertextB64"`

	// IV is the 96-bit GCM nonce.
	IV []byte `json:"ivB64"`

	// Salt is the 128-bit PBKDF2 salt.
	Salt []byte `json:"saltB64"`

	// AuthTag is the 128-bit GCM authentication tag.
	AuthTag []byte `json:"authTagB64"`

	// KDF records the key derivation parameters used at creation time.
	KDF KDFParams `json:"kdf"`

	// CreatedAt is authoritative for expiry.
	CreatedAt time.Time `json:"createdAt"`

	// ContentLength is the plaintext length in bytes. Display only.
	ContentLength int64 `json:"contentLength"`

	// DedupeTag is the blinded content tag; empty for documents created with
	// a random password.
	DedupeTag string `json:"-"`
}

// IsLive reports whether the document is still within its expiry window at
// the given instant. Liveness is never stored.
func (d EncryptedDocument) IsLive(now time.Time, window time.Duration) bool {
	return now.Sub(d.CreatedAt) < window
}

// FormatTimestamp renders t in [TimestampLayout], normalised to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a value produced by [FormatTimestamp]. RFC 3339
// values are accepted as well so that rows written by other tooling still
// load.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err == nil {
		return t, nil
	}

	t, rfcErr := time.Parse(time.RFC3339Nano, s)
	if rfcErr != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}

	return t.UTC(), nil
}
