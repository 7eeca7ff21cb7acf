package crypto

import "github.com/MKhiriev/go-seal-doc/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/document_crypto_mock.go -package=mock

// DocumentCrypto is everything the document lifecycle needs from the
// cryptographic core. It knows nothing about storage or transport.
type DocumentCrypto interface {
	// NewDocumentID draws a fresh random document identifier.
	NewDocumentID() (string, error)

	// NewPassword draws a fresh random password for the password-reveal flow.
	NewPassword() (string, error)

	// Seal encrypts plaintext under password with a new salt and IV. The
	// returned document has every cryptographic field and KDF filled in;
	// identity, timestamps and tags are left to the caller.
	Seal(plaintext []byte, password string) (models.EncryptedDocument, error)

	// Open derives the key with the parameters recorded on doc and decrypts
	// it. Any failure is [ErrAuthFailure].
	Open(doc models.EncryptedDocument, password string) (string, error)
}

// Tagger blinds content fingerprints for duplicate detection.
type Tagger interface {
	Tag(fingerprint string) string
	Mode() TagMode
}
