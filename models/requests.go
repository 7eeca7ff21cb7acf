package models

// Markdown is raw document text as submitted, before normalisation.
type Markdown string

// CreateOptions tunes the plaintext (password-reveal) creation flow.
type CreateOptions struct {
	// ContentAddressed switches the flow to a password derived from the
	// content fingerprint. The document then carries a dedupe tag and an
	// identical live submission returns the existing identifier.
	ContentAddressed bool `json:"contentAddressed,omitempty"`
}

// EncryptedPayload is the content-addressed submission: the caller already
// encrypted the normalised content with the password derived from
// ContentFingerprint. KDF names the parameters the caller used for the key;
// when omitted the protocol default is assumed.
type EncryptedPayload struct {
	CiphertextB64      string `json:"ciphertextB64"`
	IVB64              string `json:"ivB64"`
	SaltB64            string `json:"saltB64"`
	AuthTagB64         string `json:"authTagB64"`
	ContentFingerprint string `json:"contentHash"`
	ContentLength      int64  `json:"contentLength"`

	KDF *KDFParams `json:"kdf,omitempty"`
}

// CreateDocumentRequest is the body of POST /api/documents. Exactly one of
// Markdown or the encrypted fields is expected.
type CreateDocumentRequest struct {
	EncryptedPayload

	// Markdown selects the plaintext flow when non-nil.
	Markdown *string `json:"markdown,omitempty"`

	CreateOptions
}

// IsPlaintext reports whether the request uses the plaintext flow.
func (r CreateDocumentRequest) IsPlaintext() bool {
	return r.Markdown != nil
}

// DecryptDocumentRequest is the body of POST /api/documents/{id}/decrypt.
type DecryptDocumentRequest struct {
	Password string `json:"password"`
}
