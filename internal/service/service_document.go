package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/crypto"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/store"
	"github.com/MKhiriev/go-seal-doc/internal/validators"
	"github.com/MKhiriev/go-seal-doc/models"
)

// maxIDAttempts bounds identifier allocation. With 57^12 candidates a single
// collision is already improbable.
const maxIDAttempts = 5

type documentService struct {
	repository store.DocumentRepository
	crypto     crypto.DocumentCrypto
	tagger     crypto.Tagger
	validator  validators.Validator

	purgeTrigger PurgeTrigger
	window       time.Duration
	clock        func() time.Time

	logger *logger.Logger
}

// DocumentServiceOption customises [NewDocumentService].
type DocumentServiceOption func(*documentService)

// WithClock replaces time.Now as the source of creation and expiry times.
func WithClock(clock func() time.Time) DocumentServiceOption {
	return func(s *documentService) { s.clock = clock }
}

// WithPurgeTrigger sets where opportunistic purges are dispatched after a
// create. Without it no purge is triggered.
func WithPurgeTrigger(trigger PurgeTrigger) DocumentServiceOption {
	return func(s *documentService) { s.purgeTrigger = trigger }
}

func NewDocumentService(
	repository store.DocumentRepository,
	documentCrypto crypto.DocumentCrypto,
	tagger crypto.Tagger,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
	opts ...DocumentServiceOption,
) DocumentService {
	s := &documentService{
		repository:   repository,
		crypto:       documentCrypto,
		tagger:       tagger,
		validator:    validator,
		purgeTrigger: noopPurgeTrigger{},
		window:       cfg.ExpiryWindow,
		clock:        time.Now,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *documentService) CreateFromPlaintext(ctx context.Context, markdown string, opts models.CreateOptions) (models.PlaintextCreateResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.Markdown(markdown)); err != nil {
		return models.PlaintextCreateResult{}, err
	}
	normalized := crypto.NormalizeMarkdown(markdown)

	var (
		password string
		tag      string
		err      error
	)
	if opts.ContentAddressed {
		fingerprint := crypto.Fingerprint(normalized)
		if password, err = crypto.DerivePassword(fingerprint); err != nil {
			return models.PlaintextCreateResult{}, fmt.Errorf("error deriving content password: %w", err)
		}
		tag = s.tagger.Tag(fingerprint)

		existing, found, err := s.findLive(ctx, tag)
		if err != nil {
			return models.PlaintextCreateResult{}, err
		}
		if found {
			log.Debug().Str("func", "documentService.CreateFromPlaintext").Str("document_id", existing.ID).Msg("live duplicate reused")
			s.purgeTrigger.Trigger(ctx)
			return models.PlaintextCreateResult{ID: existing.ID, Password: password, Deduplicated: true}, nil
		}
	} else if password, err = s.crypto.NewPassword(); err != nil {
		return models.PlaintextCreateResult{}, fmt.Errorf("error generating password: %w", err)
	}

	doc, err := s.crypto.Seal([]byte(normalized), password)
	if err != nil {
		log.Err(err).Str("func", "documentService.CreateFromPlaintext").Msg("failed to seal document")
		return models.PlaintextCreateResult{}, err
	}
	doc.DedupeTag = tag

	id, err := s.allocateAndPersist(ctx, doc)
	if err != nil {
		return models.PlaintextCreateResult{}, err
	}
	s.purgeTrigger.Trigger(ctx)

	return models.PlaintextCreateResult{ID: id, Password: password}, nil
}

func (s *documentService) CreateFromEncryptedPayload(ctx context.Context, payload models.EncryptedPayload) (models.EncryptedCreateResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.EncryptedCreateResult{}, err
	}

	tag := s.tagger.Tag(payload.ContentFingerprint)

	existing, found, err := s.findLive(ctx, tag)
	if err != nil {
		return models.EncryptedCreateResult{}, err
	}
	if found {
		log.Debug().Str("func", "documentService.CreateFromEncryptedPayload").Str("document_id", existing.ID).Msg("live duplicate reused")
		s.purgeTrigger.Trigger(ctx)
		return models.EncryptedCreateResult{ID: existing.ID, Deduplicated: true}, nil
	}

	doc, err := decodePayload(payload)
	if err != nil {
		return models.EncryptedCreateResult{}, err
	}
	// the key was derived by the caller, so its parameters are recorded as sent
	doc.KDF = crypto.DefaultKDFParams()
	if payload.KDF != nil {
		doc.KDF = *payload.KDF
	}
	doc.DedupeTag = tag

	id, err := s.allocateAndPersist(ctx, doc)
	if err != nil {
		return models.EncryptedCreateResult{}, err
	}
	s.purgeTrigger.Trigger(ctx)

	return models.EncryptedCreateResult{ID: id}, nil
}

func (s *documentService) ReadCiphertext(ctx context.Context, id string) (models.EncryptedDocument, error) {
	return s.getLive(ctx, id)
}

func (s *documentService) Decrypt(ctx context.Context, id, password string) (string, error) {
	if err := s.validator.Validate(ctx, models.DecryptDocumentRequest{Password: password}); err != nil {
		return "", err
	}

	doc, err := s.getLive(ctx, id)
	if err != nil {
		return "", err
	}

	plaintext, err := s.crypto.Open(doc, password)
	if err != nil {
		return "", ErrAuthFailure
	}

	return plaintext, nil
}

func (s *documentService) Purge(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.repository.DeleteOlderThan(ctx, now.Add(-s.window))
	if err != nil {
		log.Err(err).Str("func", "documentService.Purge").Msg("failed to purge expired documents")
		return 0, err
	}

	log.Debug().Str("func", "documentService.Purge").Int64("deleted", deleted).Msg("purge finished")
	return deleted, nil
}

// findLive looks up the newest live document carrying tag.
func (s *documentService) findLive(ctx context.Context, tag string) (models.EncryptedDocument, bool, error) {
	notBefore := s.clock().Add(-s.window)

	doc, err := s.repository.FindLiveByDedupeTag(ctx, tag, notBefore)
	switch {
	case errors.Is(err, store.ErrDocumentNotFound):
		return models.EncryptedDocument{}, false, nil
	case err != nil:
		return models.EncryptedDocument{}, false, err
	}

	return doc, true, nil
}

// getLive treats expired documents that were not purged yet as missing.
func (s *documentService) getLive(ctx context.Context, id string) (models.EncryptedDocument, error) {
	doc, err := s.repository.Get(ctx, id)
	switch {
	case errors.Is(err, store.ErrDocumentNotFound):
		return models.EncryptedDocument{}, ErrNotFound
	case err != nil:
		return models.EncryptedDocument{}, err
	}

	if !doc.IsLive(s.clock(), s.window) {
		return models.EncryptedDocument{}, ErrNotFound
	}

	return doc, nil
}

// allocateAndPersist draws identifiers until one is free and stores doc under
// it. A Put that loses a race for the id consumes an attempt like any other
// collision.
func (s *documentService) allocateAndPersist(ctx context.Context, doc models.EncryptedDocument) (string, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id, err := s.crypto.NewDocumentID()
		if err != nil {
			return "", fmt.Errorf("error generating document id: %w", err)
		}

		exists, err := s.repository.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if exists {
			log.Warn().Str("func", "documentService.allocateAndPersist").Int("attempt", attempt).Msg("document id collision")
			continue
		}

		doc.ID = id
		doc.CreatedAt = s.clock().UTC()

		err = s.repository.Put(ctx, doc)
		if errors.Is(err, store.ErrDuplicateID) {
			log.Warn().Str("func", "documentService.allocateAndPersist").Int("attempt", attempt).Msg("document id taken concurrently")
			continue
		}
		if err != nil {
			return "", err
		}

		return id, nil
	}

	log.Error().Str("func", "documentService.allocateAndPersist").Msg("document id allocation exhausted")
	return "", ErrAllocationExhausted
}

// decodePayload turns a validated payload into a document without identity.
func decodePayload(p models.EncryptedPayload) (models.EncryptedDocument, error) {
	fields := []struct {
		name string
		src  string
	}{
		{"ciphertext", p.CiphertextB64},
		{"iv", p.IVB64},
		{"salt", p.SaltB64},
		{"auth tag", p.AuthTagB64},
	}

	decoded := make([][]byte, len(fields))
	for i, f := range fields {
		b, err := base64.StdEncoding.DecodeString(f.src)
		if err != nil {
			return models.EncryptedDocument{}, fmt.Errorf("error decoding %s: %w", f.name, err)
		}
		decoded[i] = b
	}

	return models.EncryptedDocument{
		Ciphertext:    decoded[0],
		IV:            decoded[1],
		Salt:          decoded[2],
		AuthTag:       decoded[3],
		ContentLength: p.ContentLength,
	}, nil
}

type noopPurgeTrigger struct{}

func (noopPurgeTrigger) Trigger(context.Context) {}
