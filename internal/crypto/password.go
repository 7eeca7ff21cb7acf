// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Labels of the content-derived password scheme. Every client that encrypts
// for the content-addressed flow must use the same values, so they are part
// of the wire protocol and must never change.
const (
	passwordSalt      = "alpa.md-v2"
	passwordInfo      = "password-derivation"
	passwordExtraSalt = "alpa.md-v2-extra"
	passwordRoundSize = 32
)

// DerivePassword maps a content fingerprint (64 lowercase hex characters of
// SHA-256 over the normalised content) onto a [PasswordLength]-symbol
// password over [Charset].
//
// The fingerprint text is HKDF-SHA256 input keying material. Output bytes
// are rejection sampled like [SecureRandomString]; if a round runs out of
// accepted bytes another round is derived under the extra salt. Every extra
// round uses the same info label, suffixed with the round size, so rounds
// past the second repeat the second block. The function is pure: the same
// fingerprint always yields the same password.
func DerivePassword(fingerprint string) (string, error) {
	if !IsFingerprint(fingerprint) {
		return "", ErrInvalidFingerprint
	}

	ikm := []byte(fingerprint)
	limit := rejectionLimit(len(Charset))
	result := make([]byte, 0, PasswordLength)

	for round := 0; len(result) < PasswordLength; round++ {
		salt, info := passwordRoundLabels(round)
		block, err := hkdfBlock(ikm, []byte(salt), []byte(info))
		if err != nil {
			return "", err
		}
		result = appendSampled(result, block, Charset, limit, PasswordLength)
	}

	return string(result), nil
}

// passwordRoundLabels returns the HKDF salt and info of a round. The suffix
// of the extra label is the round size, not the round number.
func passwordRoundLabels(round int) (salt, info string) {
	if round == 0 {
		return passwordSalt, passwordInfo
	}
	return passwordExtraSalt, fmt.Sprintf("%s-%d", passwordInfo, passwordRoundSize)
}

func hkdfBlock(ikm, salt, info []byte) ([]byte, error) {
	reader := hkdf.New(sha256.New, ikm, salt, info)
	block := make([]byte, passwordRoundSize)
	if _, err := io.ReadFull(reader, block); err != nil {
		return nil, fmt.Errorf("failed to derive password bytes: %w", err)
	}
	return block, nil
}
