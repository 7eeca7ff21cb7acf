package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-seal-doc/internal/adapter"
	"github.com/MKhiriev/go-seal-doc/internal/client"
	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/crypto"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/service"
	"github.com/MKhiriev/go-seal-doc/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("seal-doc-client", logger.WithConsole(), logger.WithOutput(os.Stderr), logger.WithLevel(zerolog.WarnLevel))

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		printBuildInfo()
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	documentCrypto, err := crypto.NewDocumentCrypto(models.KDFParams{
		Algorithm:  models.KDFAlgorithmPBKDF2SHA256,
		Iterations: cfg.App.KDFIterations,
		KeyLength:  crypto.KeySize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init document crypto")
	}

	services := service.NewClientServices(serverAdapter, documentCrypto, log)

	app, err := client.NewApp(services, cfg.Args, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
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
