package handler

import (
	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/handler/http"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/metrics"
	"github.com/MKhiriev/go-seal-doc/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, collectors *metrics.Collectors, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, collectors, cfg, logger),
	}, nil
}
