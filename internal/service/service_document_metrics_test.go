package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/crypto"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/metrics"
	"github.com/MKhiriev/go-seal-doc/internal/mock"
	"github.com/MKhiriev/go-seal-doc/internal/store"
	"github.com/MKhiriev/go-seal-doc/models"
)

func TestDocumentMetricsService_CountsCreates(t *testing.T) {
	env := newTestEnv(t)
	collectors := metrics.NewWithRegistry(prometheus.NewRegistry())
	svc := NewDocumentMetricsService(collectors).Wrap(env.svc)
	ctx := context.Background()

	payload, _ := sealForUpload(t, "counted")
	_, err := svc.CreateFromEncryptedPayload(ctx, payload)
	require.NoError(t, err)
	_, err = svc.CreateFromEncryptedPayload(ctx, payload)
	require.NoError(t, err)
	_, err = svc.CreateFromPlaintext(ctx, "", models.CreateOptions{})
	require.Error(t, err)

	created := collectors.DocumentsCreated
	assert.Equal(t, float64(1), testutil.ToFloat64(created.WithLabelValues(metrics.FlowEncrypted, metrics.ResultOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(created.WithLabelValues(metrics.FlowEncrypted, metrics.ResultDeduplicated)))
	assert.Equal(t, float64(1), testutil.ToFloat64(created.WithLabelValues(metrics.FlowPlaintext, metrics.ResultRejected)))
}

func TestDocumentMetricsService_CountsDecrypts(t *testing.T) {
	env := newTestEnv(t)
	collectors := metrics.NewWithRegistry(prometheus.NewRegistry())
	svc := NewDocumentMetricsService(collectors).Wrap(env.svc)
	ctx := context.Background()

	res, err := svc.CreateFromPlaintext(ctx, "secret", models.CreateOptions{})
	require.NoError(t, err)

	_, _ = svc.Decrypt(ctx, res.ID, res.Password)
	_, _ = svc.Decrypt(ctx, res.ID, "wrong-password")
	_, _ = svc.Decrypt(ctx, "missing22222", "whatever")
	_, _ = svc.Decrypt(ctx, res.ID, "")

	decrypts := collectors.Decrypts
	assert.Equal(t, float64(1), testutil.ToFloat64(decrypts.WithLabelValues(metrics.ResultOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(decrypts.WithLabelValues(metrics.ResultAuthFailure)))
	assert.Equal(t, float64(1), testutil.ToFloat64(decrypts.WithLabelValues(metrics.ResultNotFound)))
	assert.Equal(t, float64(1), testutil.ToFloat64(decrypts.WithLabelValues(metrics.ResultRejected)))
}

func TestDocumentMetricsService_CountsPurges(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newMockedService(t, ctrl)
	collectors := metrics.NewWithRegistry(prometheus.NewRegistry())
	wrapped := NewDocumentMetricsService(collectors).Wrap(svc)

	gomock.InOrder(
		repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(4), nil),
		repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("down")),
	)

	_, err := wrapped.Purge(context.Background(), testBase)
	require.NoError(t, err)
	_, err = wrapped.Purge(context.Background(), testBase)
	require.Error(t, err)

	assert.Equal(t, float64(4), testutil.ToFloat64(collectors.DocumentsPurged))
	assert.Equal(t, float64(1), testutil.ToFloat64(collectors.PurgeRuns.WithLabelValues(metrics.ResultOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collectors.PurgeRuns.WithLabelValues(metrics.ResultError)))
}

// ── NewServices ──────────────────────────────────────────────────────────────

func TestNewServices_WiresOpportunisticPurge(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDocumentRepository(ctrl)

	documentCrypto, err := crypto.NewDocumentCrypto(crypto.DefaultKDFParams())
	require.NoError(t, err)
	collectors := metrics.NewWithRegistry(prometheus.NewRegistry())

	cfg := config.StructuredConfig{
		App:    testAppConfig(),
		Server: config.Server{RequestTimeout: time.Second},
	}

	purged := make(chan struct{}, 1)
	repo.EXPECT().FindLiveByDedupeTag(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.EncryptedDocument{}, store.ErrDocumentNotFound)
	repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time) (int64, error) {
			purged <- struct{}{}
			return 0, nil
		},
	)

	services, err := NewServices(&store.Storages{DocumentRepository: repo}, documentCrypto, newTestTagger(t), collectors, cfg, logger.Nop())
	require.NoError(t, err)

	payload, _ := sealForUpload(t, "wired")
	_, err = services.DocumentService.CreateFromEncryptedPayload(context.Background(), payload)
	require.NoError(t, err)

	services.PurgeDispatcher.Wait()
	select {
	case <-purged:
	default:
		t.Fatal("opportunistic purge was not dispatched")
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(collectors.PurgeRuns.WithLabelValues(metrics.ResultOK)))
	assert.Equal(t, "test", services.AppInfoService.GetAppInfo(context.Background()).Version)
}

func TestNewServices_RequiresVersion(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{ExpiryWindow: time.Hour}}

	_, err := NewServices(&store.Storages{}, nil, newTestTagger(t), metrics.NewWithRegistry(prometheus.NewRegistry()), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
