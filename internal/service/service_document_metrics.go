package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-seal-doc/internal/metrics"
	"github.com/MKhiriev/go-seal-doc/internal/validators"
	"github.com/MKhiriev/go-seal-doc/models"
)

// DocumentMetricsService records the outcome of every lifecycle operation
// in Prometheus collectors and otherwise delegates to the wrapped service.
type DocumentMetricsService struct {
	inner      DocumentService
	collectors *metrics.Collectors
}

func NewDocumentMetricsService(collectors *metrics.Collectors) DocumentServiceWrapper {
	return &DocumentMetricsService{collectors: collectors}
}

func (m *DocumentMetricsService) Wrap(inner DocumentService) DocumentService {
	m.inner = inner
	return m
}

func (m *DocumentMetricsService) CreateFromPlaintext(ctx context.Context, markdown string, opts models.CreateOptions) (models.PlaintextCreateResult, error) {
	res, err := m.inner.CreateFromPlaintext(ctx, markdown, opts)
	m.collectors.DocumentsCreated.WithLabelValues(metrics.FlowPlaintext, createResult(res.Deduplicated, err)).Inc()
	return res, err
}

func (m *DocumentMetricsService) CreateFromEncryptedPayload(ctx context.Context, payload models.EncryptedPayload) (models.EncryptedCreateResult, error) {
	res, err := m.inner.CreateFromEncryptedPayload(ctx, payload)
	m.collectors.DocumentsCreated.WithLabelValues(metrics.FlowEncrypted, createResult(res.Deduplicated, err)).Inc()
	return res, err
}

func (m *DocumentMetricsService) ReadCiphertext(ctx context.Context, id string) (models.EncryptedDocument, error) {
	return m.inner.ReadCiphertext(ctx, id)
}

func (m *DocumentMetricsService) Decrypt(ctx context.Context, id, password string) (string, error) {
	plaintext, err := m.inner.Decrypt(ctx, id, password)

	result := metrics.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		result = metrics.ResultNotFound
	case errors.Is(err, ErrAuthFailure):
		result = metrics.ResultAuthFailure
	case isValidationError(err):
		result = metrics.ResultRejected
	default:
		result = metrics.ResultError
	}
	m.collectors.Decrypts.WithLabelValues(result).Inc()

	return plaintext, err
}

func (m *DocumentMetricsService) Purge(ctx context.Context, now time.Time) (int64, error) {
	start := time.Now()
	deleted, err := m.inner.Purge(ctx, now)
	m.collectors.PurgeDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		m.collectors.PurgeRuns.WithLabelValues(metrics.ResultError).Inc()
		return deleted, err
	}

	m.collectors.PurgeRuns.WithLabelValues(metrics.ResultOK).Inc()
	m.collectors.DocumentsPurged.Add(float64(deleted))
	return deleted, nil
}

func createResult(deduplicated bool, err error) string {
	switch {
	case err == nil && deduplicated:
		return metrics.ResultDeduplicated
	case err == nil:
		return metrics.ResultOK
	case isValidationError(err):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}

func isValidationError(err error) bool {
	_, ok := validators.AsValidationError(err)
	return ok
}
