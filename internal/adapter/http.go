package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/utils"
	"github.com/MKhiriev/go-seal-doc/models"
)

const (
	retryCount    = 2
	retryWaitTime = 200 * time.Millisecond
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout and retries on gateway errors.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
		utils.WithGatewayRetries(retryCount, retryWaitTime),
	)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateDocument implements [ServerAdapter]. It POSTs the payload to
// POST /api/documents and resolves the returned read URL against the base URL.
func (h *httpServerAdapter) CreateDocument(ctx context.Context, payload models.EncryptedPayload) (models.CreateDocumentResponse, error) {
	var created models.CreateDocumentResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateDocumentRequest{EncryptedPayload: payload}).
		SetResult(&created).
		Post("/api/documents")
	if err != nil {
		return models.CreateDocumentResponse{}, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateDocumentResponse{}, err
	}

	created.ReadURL = h.resolve(created.ReadURL)
	h.logger.Debug().
		Str("func", "httpServerAdapter.CreateDocument").
		Str("document_id", created.DocumentID).
		Bool("deduplicated", created.Deduplicated).
		Msg("document uploaded")

	return created, nil
}

// GetDocument implements [ServerAdapter]. It GETs GET /api/documents/{id}.
func (h *httpServerAdapter) GetDocument(ctx context.Context, id string) (models.EncryptedDocumentResponse, error) {
	var doc models.EncryptedDocumentResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&doc).
		Get("/api/documents/{id}")
	if err != nil {
		return models.EncryptedDocumentResponse{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedDocumentResponse{}, err
	}

	return doc, nil
}

// DecryptDocument implements [ServerAdapter]. It POSTs the password to
// POST /api/documents/{id}/decrypt.
func (h *httpServerAdapter) DecryptDocument(ctx context.Context, id, password string) (string, error) {
	var decrypted models.DecryptDocumentResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DecryptDocumentRequest{Password: password}).
		SetResult(&decrypted).
		Post("/api/documents/{id}/decrypt")
	if err != nil {
		return "", fmt.Errorf("decrypt document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return decrypted.Markdown, nil
}

// GetAppInfo implements [ServerAdapter]. It GETs GET /api/version.
func (h *httpServerAdapter) GetAppInfo(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("get app info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) resolve(ref string) string {
	if ref == "" || strings.Contains(ref, "://") {
		return ref
	}
	return h.baseURL + "/" + strings.TrimLeft(ref, "/")
}
