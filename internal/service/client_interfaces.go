package service

import (
	"context"

	"github.com/MKhiriev/go-seal-doc/models"
)

// ClientDocumentService defines the client-side use cases. Sharing and
// opening happen locally: only ciphertext and the content fingerprint leave
// the machine.
type ClientDocumentService interface {
	// Share normalises markdown, derives its password from the content
	// fingerprint, encrypts it locally and uploads the ciphertext. Sharing
	// the same content twice within the expiry window yields the same
	// identifier and password.
	Share(ctx context.Context, markdown string) (models.ShareResult, error)

	// Open fetches the ciphertext of id and decrypts it locally. A wrong
	// password and a corrupted record both yield [ErrAuthFailure].
	Open(ctx context.Context, id, password string) (string, error)

	// OpenRemote lets the server decrypt id. The plaintext crosses the wire.
	OpenRemote(ctx context.Context, id, password string) (string, error)

	// ServerInfo returns the version and expiry window of the server.
	ServerInfo(ctx context.Context) (models.AppInfo, error)
}
