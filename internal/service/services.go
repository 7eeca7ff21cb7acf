package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/crypto"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/metrics"
	"github.com/MKhiriev/go-seal-doc/internal/store"
	"github.com/MKhiriev/go-seal-doc/internal/validators"
	"github.com/MKhiriev/go-seal-doc/internal/workers"
)

type Services struct {
	DocumentService DocumentService
	AppInfoService  AppInfoService

	// PurgeDispatcher runs the opportunistic purges triggered by creates.
	// Wait on it during shutdown.
	PurgeDispatcher *workers.PurgeDispatcher
}

func NewServices(
	storages *store.Storages,
	documentCrypto crypto.DocumentCrypto,
	tagger crypto.Tagger,
	collectors *metrics.Collectors,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, tagger)
	if err != nil {
		return nil, err
	}

	// the dispatcher purges through the instrumented service, which only
	// exists once the dispatcher has been handed to it
	var documents DocumentService
	dispatcher := workers.NewPurgeDispatcher(workers.PurgerFunc(func(ctx context.Context, now time.Time) (int64, error) {
		return documents.Purge(ctx, now)
	}), cfg.Server.RequestTimeout, logger)

	documents = NewDocumentMetricsService(collectors).Wrap(
		NewDocumentService(
			storages.DocumentRepository,
			documentCrypto,
			tagger,
			validators.NewDocumentValidator(),
			cfg.App,
			logger,
			WithPurgeTrigger(dispatcher),
		),
	)

	return &Services{
		DocumentService: documents,
		AppInfoService:  appInfo,
		PurgeDispatcher: dispatcher,
	}, nil
}
