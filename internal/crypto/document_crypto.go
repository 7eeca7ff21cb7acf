// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-seal-doc/models"
)

// documentCrypto is the default [DocumentCrypto].
type documentCrypto struct {
	params models.KDFParams
}

// NewDocumentCrypto returns a [DocumentCrypto] that records params on every
// new document. params are validated up front so a misconfigured deployment
// fails at startup instead of per request.
func NewDocumentCrypto(params models.KDFParams) (DocumentCrypto, error) {
	if err := ValidateKDFParams(params); err != nil {
		return nil, err
	}
	return &documentCrypto{params: params}, nil
}

func (d *documentCrypto) NewDocumentID() (string, error) {
	return GenerateDocumentID()
}

func (d *documentCrypto) NewPassword() (string, error) {
	return GeneratePassword()
}

// Seal implements [DocumentCrypto].
func (d *documentCrypto) Seal(plaintext []byte, password string) (models.EncryptedDocument, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return models.EncryptedDocument{}, err
	}

	key, err := DeriveKey(password, salt, d.params)
	if err != nil {
		return models.EncryptedDocument{}, err
	}

	sealed, err := Encrypt(plaintext, key)
	if err != nil {
		return models.EncryptedDocument{}, fmt.Errorf("error encrypting document: %w", err)
	}

	return models.EncryptedDocument{
		Ciphertext:    sealed.Ciphertext,
		IV:            sealed.IV,
		Salt:          salt,
		AuthTag:       sealed.AuthTag,
		KDF:           d.params,
		ContentLength: int64(len(plaintext)),
	}, nil
}

// Open implements [DocumentCrypto]. A key is always derived before the
// ciphertext is looked at, so a malformed record costs the same as a wrong
// password.
func (d *documentCrypto) Open(doc models.EncryptedDocument, password string) (string, error) {
	key, err := DeriveKey(password, doc.Salt, doc.KDF)
	if err != nil {
		// burn one derivation; the suffix keeps an empty password from
		// short-circuiting
		_, _ = DeriveKey(password+"-", make([]byte, SaltSize), d.params)
		return "", ErrAuthFailure
	}

	plaintext, err := Decrypt(models.Sealed{
		Ciphertext: doc.Ciphertext,
		IV:         doc.IV,
		AuthTag:    doc.AuthTag,
	}, key)
	if err != nil {
		return "", ErrAuthFailure
	}

	return string(plaintext), nil
}
