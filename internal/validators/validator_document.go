// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"errors"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-seal-doc/internal/crypto"
	"github.com/MKhiriev/go-seal-doc/models"
)

// MaxContentBytes is the largest accepted plaintext, measured in UTF-8 bytes
// after normalisation.
const MaxContentBytes = 200 * 1024

// Field name constants used to restrict validation of an
// [models.EncryptedPayload] to a subset of its fields.
const (
	FieldCiphertext    = "ciphertext"
	FieldIV            = "iv"
	FieldSalt          = "salt"
	FieldAuthTag       = "auth_tag"
	FieldContentHash   = "content_hash"
	FieldContentLength = "content_length"
	FieldKDF           = "kdf"
)

var allPayloadFields = []string{
	FieldCiphertext, FieldIV, FieldSalt, FieldAuthTag, FieldContentHash, FieldContentLength, FieldKDF,
}

// DocumentValidator validates create and decrypt inputs.
//
// Supported values:
//   - models.Markdown: raw plaintext of the password-reveal flow
//   - models.EncryptedPayload (or pointer): content-addressed submission
//   - models.DecryptDocumentRequest (or pointer)
type DocumentValidator struct {
	validate *validator.Validate
}

// NewDocumentValidator returns a [Validator] for document inputs.
func NewDocumentValidator() Validator {
	return &DocumentValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Markdown:
		return v.validateMarkdown(value)

	case models.EncryptedPayload:
		return v.validateEncryptedPayload(ctx, value, fields...)
	case *models.EncryptedPayload:
		return v.validateEncryptedPayload(ctx, *value, fields...)

	case models.DecryptDocumentRequest:
		return v.validateDecryptRequest(value)
	case *models.DecryptDocumentRequest:
		return v.validateDecryptRequest(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateMarkdown checks the raw text first for encoding and then the
// normalised form for emptiness and size.
func (v *DocumentValidator) validateMarkdown(raw models.Markdown) error {
	if !utf8.ValidString(string(raw)) {
		return newValidationError(ReasonInvalidFormat, "Markdown must be valid UTF-8.")
	}

	normalized := crypto.NormalizeMarkdown(string(raw))
	if normalized == "" {
		return newValidationError(ReasonEmpty, "Markdown content cannot be empty.")
	}

	if size := len(normalized); size > MaxContentBytes {
		return newValidationError(ReasonTooLarge,
			"Content is too large (%.1f KB). Maximum is 200 KB.", float64(size)/1024)
	}

	return nil
}

func (v *DocumentValidator) validateEncryptedPayload(ctx context.Context, payload models.EncryptedPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = allPayloadFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldCiphertext:
			err = v.checkBase64(ctx, payload.CiphertextB64, -1)
		case FieldIV:
			err = v.checkBase64(ctx, payload.IVB64, crypto.IVSize)
		case FieldSalt:
			err = v.checkBase64(ctx, payload.SaltB64, crypto.SaltSize)
		case FieldAuthTag:
			err = v.checkBase64(ctx, payload.AuthTagB64, crypto.TagSize)
		case FieldContentHash:
			if v.validate.VarCtx(ctx, payload.ContentFingerprint, "required,len=64,hexadecimal,lowercase") != nil {
				err = newValidationError(ReasonInvalidFormat, "Invalid content hash.")
			}
		case FieldContentLength:
			switch {
			case payload.ContentLength <= 0:
				err = newValidationError(ReasonInvalidFormat, "Invalid content length.")
			case payload.ContentLength > MaxContentBytes:
				err = newValidationError(ReasonTooLarge,
					"Content is too large (%.1f KB). Maximum is 200 KB.", float64(payload.ContentLength)/1024)
			}
		case FieldKDF:
			// absent means the protocol default
			if payload.KDF != nil && crypto.ValidateKDFParams(*payload.KDF) != nil {
				err = newValidationError(ReasonInvalidFormat, "Unsupported key derivation parameters.")
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// checkBase64 validates a standard base64 field and, when size >= 0, the
// decoded length.
func (v *DocumentValidator) checkBase64(ctx context.Context, value string, size int) error {
	if err := v.validate.VarCtx(ctx, value, "required,base64"); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 && vErrs[0].Tag() == "required" {
			return newValidationError(ReasonInvalidFormat, "Missing or invalid encryption fields.")
		}
		return newValidationError(ReasonInvalidFormat, "Encryption fields must be base64 encoded.")
	}

	if size < 0 {
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil || len(decoded) != size {
		return newValidationError(ReasonInvalidFormat, "Missing or invalid encryption fields.")
	}

	return nil
}

func (v *DocumentValidator) validateDecryptRequest(req models.DecryptDocumentRequest) error {
	if req.Password == "" {
		return newValidationError(ReasonMissingPassword, "Password is required.")
	}
	return nil
}
