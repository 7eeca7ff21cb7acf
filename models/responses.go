package models

// PlaintextCreateResult is returned by the plaintext creation flow. The
// password is revealed exactly once, here.
type PlaintextCreateResult struct {
	ID           string `json:"documentId"`
	Password     string `json:"password"`
	Deduplicated bool   `json:"deduplicated,omitempty"`
}

// EncryptedCreateResult is returned by the content-addressed flow.
type EncryptedCreateResult struct {
	ID           string `json:"documentId"`
	Deduplicated bool   `json:"deduplicated,omitempty"`
}

// CreateDocumentResponse is the 201 body of POST /api/documents.
type CreateDocumentResponse struct {
	DocumentID   string `json:"documentId"`
	ReadURL      string `json:"readUrl"`
	Password     string `json:"password,omitempty"`
	Deduplicated bool   `json:"deduplicated,omitempty"`
}

// EncryptedDocumentResponse is the body of GET /api/documents/{id}: just
// enough for a client to decrypt locally.
type EncryptedDocumentResponse struct {
	CiphertextB64 string    `json:"ciphertextB64"`
	IVB64         string    `json:"ivB64"`
	SaltB64       string    `json:"saltB64"`
	AuthTagB64    string    `json:"authTagB64"`
	KDF           KDFParams `json:"kdf"`
}

// DecryptDocumentResponse is the body of a successful server-side decrypt.
type DecryptDocumentResponse struct {
	Markdown string `json:"markdown"`
}

// PurgeResponse is the body of the cleanup endpoint.
type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}

// APIError is the structured error body. Code is stable and machine
// readable; Error is a human message with no internal detail.
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Sealed is the output of the authenticated cipher.
type Sealed struct {
	Ciphertext []byte
	IV         []byte
	AuthTag    []byte
}

// AppInfo is the body of GET /api/version.
type AppInfo struct {
	Version string `json:"version"`

	// ExpiryWindow is how long a document stays readable, e.g. "48h0m0s".
	ExpiryWindow string `json:"expiryWindow"`

	// DedupeMode is "peppered" or "unpeppered".
	DedupeMode string `json:"dedupeMode"`
}

// ShareResult is what the command-line client prints after sharing a file.
type ShareResult struct {
	ID           string
	Password     string
	ReadURL      string
	Deduplicated bool
}
