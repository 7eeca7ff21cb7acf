// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"
)

// Charset is the production alphabet for identifiers and passwords. It is
// URL-safe and leaves out the ambiguous glyphs 0, 1, O, I and l.
const Charset = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	// DocumentIDLength is the number of symbols in a document identifier.
	DocumentIDLength = 12

	// PasswordLength is the number of symbols in a generated password.
	PasswordLength = 24
)

// randReader is the entropy source. Tests swap it to simulate exhaustion.
var randReader io.Reader = rand.Reader

// SecureRandomString returns length symbols drawn uniformly from charset.
//
// Bytes are read from the OS CSPRNG and every byte at or above the largest
// multiple of len(charset) that fits into 256 is discarded, so the mapping
// has no modulo bias. A failing entropy source is returned as
// [ErrEntropySource] and is never retried.
func SecureRandomString(length int, charset string) (string, error) {
	if err := checkCharset(length, charset); err != nil {
		return "", err
	}

	limit := rejectionLimit(len(charset))
	result := make([]byte, 0, length)

	for len(result) < length {
		buf := make([]byte, length-len(result))
		if _, err := io.ReadFull(randReader, buf); err != nil {
			return "", fmt.Errorf("%w: %w", ErrEntropySource, err)
		}
		result = appendSampled(result, buf, charset, limit, length)
	}

	return string(result), nil
}

// GenerateDocumentID returns a fresh 12-symbol identifier over [Charset].
func GenerateDocumentID() (string, error) {
	return SecureRandomString(DocumentIDLength, Charset)
}

// GeneratePassword returns a fresh 24-symbol password over [Charset].
func GeneratePassword() (string, error) {
	return SecureRandomString(PasswordLength, Charset)
}

// rejectionLimit is floor(256/n)*n: bytes below it map uniformly onto n
// symbols.
func rejectionLimit(n int) int {
	return 256 - 256%n
}

// appendSampled maps accepted bytes of src onto charset and appends them to
// dst until dst reaches want symbols.
func appendSampled(dst, src []byte, charset string, limit, want int) []byte {
	for _, b := range src {
		if len(dst) >= want {
			break
		}
		if int(b) < limit {
			dst = append(dst, charset[int(b)%len(charset)])
		}
	}
	return dst
}

func checkCharset(length int, charset string) error {
	if length < 1 || charset == "" || len(charset) > 256 {
		return ErrInvalidCharset
	}

	var seen [256]bool
	for i := 0; i < len(charset); i++ {
		c := charset[i]
		if c >= utf8.RuneSelf || seen[c] {
			return ErrInvalidCharset
		}
		seen[c] = true
	}

	return nil
}
