package http

import (
	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/metrics"
	"github.com/MKhiriev/go-seal-doc/internal/service"
	"github.com/MKhiriev/go-seal-doc/internal/utils"
)

type Handler struct {
	services   *service.Services
	collectors *metrics.Collectors

	cfg        config.Server
	cronSecret string

	limiter  *ipRateLimiter
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. collectors may be nil, in which case
// no metrics are recorded and /metrics is not served.
func NewHandler(services *service.Services, collectors *metrics.Collectors, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		collectors: collectors,
		cfg:        cfg.Server,
		cronSecret: cfg.App.CronSecret,
		limiter:    newIPRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst),
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     logger,
	}
}
