package store

import (
	"database/sql"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-seal-doc/models"
)

// documentRow is the SQL representation of [models.EncryptedDocument].
// Binary fields are stored as standard base64 text so that the same schema
// serves PostgreSQL and SQLite.
type documentRow struct {
	ID            string         `db:"id"`
	CiphertextB64 string         `db:"ciphertext_b64"`
	IVB64         string         `db:"iv_b64"`
	SaltB64       string         `db:"salt_b64"`
	AuthTagB64    string         `db:"auth_tag_b64"`
	KDFAlgorithm  string         `db:"kdf_algorithm"`
	KDFIterations int            `db:"kdf_iterations"`
	KDFKeyLength  int            `db:"kdf_key_length"`
	CreatedAtISO  string         `db:"created_at_iso"`
	ContentLength int64          `db:"content_length"`
	DedupeTag     sql.NullString `db:"dedupe_tag"`
}

func newDocumentRow(doc models.EncryptedDocument) documentRow {
	return documentRow{
		ID:            doc.ID,
		CiphertextB64: base64.StdEncoding.EncodeToString(doc.Ciphertext),
		IVB64:         base64.StdEncoding.EncodeToString(doc.IV),
		SaltB64:       base64.StdEncoding.EncodeToString(doc.Salt),
		AuthTagB64:    base64.StdEncoding.EncodeToString(doc.AuthTag),
		KDFAlgorithm:  doc.KDF.Algorithm,
		KDFIterations: doc.KDF.Iterations,
		KDFKeyLength:  doc.KDF.KeyLength,
		CreatedAtISO:  models.FormatTimestamp(doc.CreatedAt),
		ContentLength: doc.ContentLength,
		DedupeTag:     sql.NullString{String: doc.DedupeTag, Valid: doc.DedupeTag != ""},
	}
}

func (r documentRow) toDocument() (models.EncryptedDocument, error) {
	doc := models.EncryptedDocument{
		ID: r.ID,
		KDF: models.KDFParams{
			Algorithm:  r.KDFAlgorithm,
			Iterations: r.KDFIterations,
			KeyLength:  r.KDFKeyLength,
		},
		ContentLength: r.ContentLength,
		DedupeTag:     r.DedupeTag.String,
	}

	var err error
	if doc.Ciphertext, err = base64.StdEncoding.DecodeString(r.CiphertextB64); err != nil {
		return models.EncryptedDocument{}, fmt.Errorf("%w: ciphertext: %w", ErrCorruptRecord, err)
	}
	if doc.IV, err = base64.StdEncoding.DecodeString(r.IVB64); err != nil {
		return models.EncryptedDocument{}, fmt.Errorf("%w: iv: %w", ErrCorruptRecord, err)
	}
	if doc.Salt, err = base64.StdEncoding.DecodeString(r.SaltB64); err != nil {
		return models.EncryptedDocument{}, fmt.Errorf("%w: salt: %w", ErrCorruptRecord, err)
	}
	if doc.AuthTag, err = base64.StdEncoding.DecodeString(r.AuthTagB64); err != nil {
		return models.EncryptedDocument{}, fmt.Errorf("%w: auth tag: %w", ErrCorruptRecord, err)
	}
	if doc.CreatedAt, err = models.ParseTimestamp(r.CreatedAtISO); err != nil {
		return models.EncryptedDocument{}, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}

	return doc, nil
}
