package models

import (
	"encoding/base64"
	"fmt"
)

// NewEncryptedDocumentResponse exposes the cryptographic fields of doc with
// standard base64 encoding.
func NewEncryptedDocumentResponse(doc EncryptedDocument) EncryptedDocumentResponse {
	return EncryptedDocumentResponse{
		CiphertextB64: base64.StdEncoding.EncodeToString(doc.Ciphertext),
		IVB64:         base64.StdEncoding.EncodeToString(doc.IV),
		SaltB64:       base64.StdEncoding.EncodeToString(doc.Salt),
		AuthTagB64:    base64.StdEncoding.EncodeToString(doc.AuthTag),
		KDF:           doc.KDF,
	}
}

// Document decodes r back into an [EncryptedDocument] without identity or
// timestamps.
func (r EncryptedDocumentResponse) Document() (EncryptedDocument, error) {
	doc := EncryptedDocument{KDF: r.KDF}

	fields := []struct {
		name string
		src  string
		dst  *[]byte
	}{
		{"ciphertext", r.CiphertextB64, &doc.Ciphertext},
		{"iv", r.IVB64, &doc.IV},
		{"salt", r.SaltB64, &doc.Salt},
		{"auth tag", r.AuthTagB64, &doc.AuthTag},
	}

	for _, f := range fields {
		b, err := base64.StdEncoding.DecodeString(f.src)
		if err != nil {
			return EncryptedDocument{}, fmt.Errorf("error decoding %s: %w", f.name, err)
		}
		*f.dst = b
	}

	return doc, nil
}

// NewEncryptedPayload builds the content-addressed upload for a document that
// was sealed locally with the password derived from fingerprint.
func NewEncryptedPayload(doc EncryptedDocument, fingerprint string) EncryptedPayload {
	p := EncryptedPayload{
		CiphertextB64:      base64.StdEncoding.EncodeToString(doc.Ciphertext),
		IVB64:              base64.StdEncoding.EncodeToString(doc.IV),
		SaltB64:            base64.StdEncoding.EncodeToString(doc.Salt),
		AuthTagB64:         base64.StdEncoding.EncodeToString(doc.AuthTag),
		ContentFingerprint: fingerprint,
		ContentLength:      doc.ContentLength,
	}
	if doc.KDF != (KDFParams{}) {
		kdf := doc.KDF
		p.KDF = &kdf
	}
	return p
}
