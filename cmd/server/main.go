package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/crypto"
	"github.com/MKhiriev/go-seal-doc/internal/handler"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/metrics"
	"github.com/MKhiriev/go-seal-doc/internal/server"
	"github.com/MKhiriev/go-seal-doc/internal/service"
	"github.com/MKhiriev/go-seal-doc/internal/store"
	"github.com/MKhiriev/go-seal-doc/internal/workers"
	"github.com/MKhiriev/go-seal-doc/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("seal-doc-server").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "dev" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("seal-doc-server", logger.WithLevel(logger.LevelForMode(cfg.App.IsProduction())))
	log.Debug().
		Str("mode", cfg.App.Mode).
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Dur("expiry_window", cfg.App.ExpiryWindow).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	documentCrypto, err := crypto.NewDocumentCrypto(models.KDFParams{
		Algorithm:  models.KDFAlgorithmPBKDF2SHA256,
		Iterations: cfg.App.KDFIterations,
		KeyLength:  crypto.KeySize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error initialising document crypto")
	}

	tagger, err := crypto.NewDedupeTagger(cfg.App.DedupePepper, cfg.App.AllowUnpepperedDedupe)
	if err != nil {
		log.Fatal().Err(err).Msg("error initialising dedupe tagger")
	}
	if tagger.Mode() == crypto.TagModeUnpeppered {
		log.Warn().Msg("dedupe pepper is not set: raw content fingerprints are stored as dedupe tags")
	}

	collectors := metrics.New()

	services, err := service.NewServices(storages, documentCrypto, tagger, collectors, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, collectors, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewPurgeWorker(services.DocumentService, cfg.Workers.PurgeInterval, log),
	)
	background.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("error running server")
		stop()
	}

	background.Wait()
	services.PurgeDispatcher.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
