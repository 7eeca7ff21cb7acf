package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-seal-doc/models"
)

// DocumentService is the encrypted-document lifecycle. Creation runs
// validation, duplicate lookup, identifier allocation and persistence in
// that order; every failure exits early with a typed error.
type DocumentService interface {
	// CreateFromPlaintext encrypts markdown on the server. By default a
	// random password is generated and returned exactly once. With
	// opts.ContentAddressed the password is derived from the content and
	// live duplicates are reused.
	CreateFromPlaintext(ctx context.Context, markdown string, opts models.CreateOptions) (models.PlaintextCreateResult, error)

	// CreateFromEncryptedPayload stores a document the caller already
	// encrypted with the password derived from its content fingerprint.
	CreateFromEncryptedPayload(ctx context.Context, payload models.EncryptedPayload) (models.EncryptedCreateResult, error)

	// ReadCiphertext returns a live document or [ErrNotFound].
	ReadCiphertext(ctx context.Context, id string) (models.EncryptedDocument, error)

	// Decrypt opens a live document with password. Wrong passwords and
	// corrupted records both yield [ErrAuthFailure].
	Decrypt(ctx context.Context, id, password string) (string, error)

	// Purge removes every document past its expiry window at now. Calling it
	// again with nothing to remove is not an error.
	Purge(ctx context.Context, now time.Time) (int64, error)
}

// AppInfoService reports build and deployment information that clients may
// show to users.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// PurgeTrigger schedules an asynchronous purge. Trigger must not block and
// must not report failures to the caller.
type PurgeTrigger interface {
	Trigger(ctx context.Context)
}

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// instrumentation.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}
