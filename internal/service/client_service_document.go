package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-seal-doc/internal/adapter"
	"github.com/MKhiriev/go-seal-doc/internal/crypto"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/validators"
	"github.com/MKhiriev/go-seal-doc/models"
)

type clientDocumentService struct {
	adapter   adapter.ServerAdapter
	crypto    crypto.DocumentCrypto
	validator validators.Validator

	logger *logger.Logger
}

func NewClientDocumentService(
	serverAdapter adapter.ServerAdapter,
	documentCrypto crypto.DocumentCrypto,
	validator validators.Validator,
	logger *logger.Logger,
) ClientDocumentService {
	return &clientDocumentService{
		adapter:   serverAdapter,
		crypto:    documentCrypto,
		validator: validator,
		logger:    logger,
	}
}

func (c *clientDocumentService) Share(ctx context.Context, markdown string) (models.ShareResult, error) {
	if err := c.validator.Validate(ctx, models.Markdown(markdown)); err != nil {
		return models.ShareResult{}, err
	}

	normalized := crypto.NormalizeMarkdown(markdown)
	fingerprint := crypto.Fingerprint(normalized)

	password, err := crypto.DerivePassword(fingerprint)
	if err != nil {
		return models.ShareResult{}, fmt.Errorf("error deriving content password: %w", err)
	}

	doc, err := c.crypto.Seal([]byte(normalized), password)
	if err != nil {
		c.logger.Err(err).Str("func", "clientDocumentService.Share").Msg("failed to encrypt document")
		return models.ShareResult{}, err
	}

	created, err := c.adapter.CreateDocument(ctx, models.NewEncryptedPayload(doc, fingerprint))
	if err != nil {
		c.logger.Err(err).Str("func", "clientDocumentService.Share").Msg("failed to upload document")
		return models.ShareResult{}, mapAdapterError(err)
	}

	return models.ShareResult{
		ID:           created.DocumentID,
		Password:     password,
		ReadURL:      created.ReadURL,
		Deduplicated: created.Deduplicated,
	}, nil
}

func (c *clientDocumentService) Open(ctx context.Context, id, password string) (string, error) {
	if err := c.validator.Validate(ctx, models.DecryptDocumentRequest{Password: password}); err != nil {
		return "", err
	}

	resp, err := c.adapter.GetDocument(ctx, id)
	if err != nil {
		c.logger.Err(err).Str("func", "clientDocumentService.Open").Str("document_id", id).Msg("failed to fetch document")
		return "", mapAdapterError(err)
	}

	doc, err := resp.Document()
	if err != nil {
		c.logger.Err(err).Str("func", "clientDocumentService.Open").Str("document_id", id).Msg("server returned a malformed document")
		return "", ErrAuthFailure
	}

	plaintext, err := c.crypto.Open(doc, password)
	if err != nil {
		return "", ErrAuthFailure
	}

	return plaintext, nil
}

func (c *clientDocumentService) OpenRemote(ctx context.Context, id, password string) (string, error) {
	if err := c.validator.Validate(ctx, models.DecryptDocumentRequest{Password: password}); err != nil {
		return "", err
	}

	plaintext, err := c.adapter.DecryptDocument(ctx, id, password)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return plaintext, nil
}

func (c *clientDocumentService) ServerInfo(ctx context.Context) (models.AppInfo, error) {
	info, err := c.adapter.GetAppInfo(ctx)
	if err != nil {
		return models.AppInfo{}, mapAdapterError(err)
	}
	return info, nil
}
