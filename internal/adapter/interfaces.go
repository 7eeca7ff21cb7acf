// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the command-line client to
// talk to a go-seal-doc server.
//
// The primary abstraction is [ServerAdapter], which decouples the client use
// cases from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrTooManyRequests] for 429). The server's structured error body is kept
// as an [*APIError] in the chain.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-seal-doc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with a go-seal-doc
// server. Only ciphertext ever crosses it on the content-addressed path.
type ServerAdapter interface {
	// CreateDocument uploads a payload that was encrypted locally with a
	// content-derived password. The returned ReadURL is absolute.
	CreateDocument(ctx context.Context, payload models.EncryptedPayload) (models.CreateDocumentResponse, error)

	// GetDocument fetches the encrypted record of a live document.
	GetDocument(ctx context.Context, id string) (models.EncryptedDocumentResponse, error)

	// DecryptDocument asks the server to decrypt a document with password.
	// The plaintext travels back over the wire; prefer local decryption.
	DecryptDocument(ctx context.Context, id, password string) (string, error)

	// GetAppInfo returns the server version and its expiry window.
	GetAppInfo(ctx context.Context) (models.AppInfo, error)
}
