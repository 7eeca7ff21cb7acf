package store

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-seal-doc/models"
)

// memoryDocumentRepository is an in-process [DocumentRepository] used for
// development and tests. Timestamps are truncated to milliseconds on Put so
// comparisons match the SQL implementation. Byte slices are copied in and
// out, so stored records stay immutable.
type memoryDocumentRepository struct {
	mu   sync.RWMutex
	docs map[string]models.EncryptedDocument
}

// NewMemoryDocumentRepository returns an empty in-memory repository.
func NewMemoryDocumentRepository() DocumentRepository {
	return &memoryDocumentRepository{
		docs: make(map[string]models.EncryptedDocument),
	}
}

func (m *memoryDocumentRepository) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.docs[id]
	return ok, nil
}

func (m *memoryDocumentRepository) Get(ctx context.Context, id string) (models.EncryptedDocument, error) {
	if err := ctx.Err(); err != nil {
		return models.EncryptedDocument{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return models.EncryptedDocument{}, ErrDocumentNotFound
	}
	return cloneDocument(doc), nil
}

func (m *memoryDocumentRepository) Put(ctx context.Context, doc models.EncryptedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[doc.ID]; ok {
		return ErrDuplicateID
	}

	doc = cloneDocument(doc)
	doc.CreatedAt = doc.CreatedAt.UTC().Truncate(time.Millisecond)
	m.docs[doc.ID] = doc
	return nil
}

func (m *memoryDocumentRepository) FindLiveByDedupeTag(ctx context.Context, tag string, notBefore time.Time) (models.EncryptedDocument, error) {
	if err := ctx.Err(); err != nil {
		return models.EncryptedDocument{}, err
	}

	notBefore = notBefore.Truncate(time.Millisecond)

	m.mu.RLock()
	defer m.mu.RUnlock()

	var (
		latest models.EncryptedDocument
		found  bool
	)
	for _, doc := range m.docs {
		if tag == "" || doc.DedupeTag != tag || !doc.CreatedAt.After(notBefore) {
			continue
		}
		if !found || doc.CreatedAt.After(latest.CreatedAt) {
			latest, found = doc, true
		}
	}

	if !found {
		return models.EncryptedDocument{}, ErrDocumentNotFound
	}
	return cloneDocument(latest), nil
}

func (m *memoryDocumentRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	cutoff = cutoff.Truncate(time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for id, doc := range m.docs {
		if doc.CreatedAt.Before(cutoff) {
			delete(m.docs, id)
			deleted++
		}
	}
	return deleted, nil
}

func cloneDocument(doc models.EncryptedDocument) models.EncryptedDocument {
	doc.Ciphertext = bytes.Clone(doc.Ciphertext)
	doc.IV = bytes.Clone(doc.IV)
	doc.Salt = bytes.Clone(doc.Salt)
	doc.AuthTag = bytes.Clone(doc.AuthTag)
	return doc
}
