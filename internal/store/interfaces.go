// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-seal-doc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_repository_mock.go -package=mock

// DocumentRepository persists encrypted documents. Records are immutable:
// there is no update, only create, lookup and purge.
type DocumentRepository interface {
	// Exists reports whether a document with the given id is stored,
	// regardless of its liveness.
	Exists(ctx context.Context, id string) (bool, error)

	// Get returns the document with the given id or [ErrDocumentNotFound].
	Get(ctx context.Context, id string) (models.EncryptedDocument, error)

	// Put stores a new document. A taken id yields [ErrDuplicateID].
	Put(ctx context.Context, doc models.EncryptedDocument) error

	// FindLiveByDedupeTag returns the most recent document carrying tag that
	// was created strictly after notBefore, or [ErrDocumentNotFound].
	FindLiveByDedupeTag(ctx context.Context, tag string, notBefore time.Time) (models.EncryptedDocument, error)

	// DeleteOlderThan removes every document created strictly before cutoff
	// and returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ErrorClassificator maps driver errors to retry decisions and detects
// primary key collisions.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
