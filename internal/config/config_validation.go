package config

import (
	"fmt"
	"slices"
)

// KDF iteration bounds mirror the ones enforced by the key derivation.
const (
	minKDFIterations = 300_000
	maxKDFIterations = 10_000_000
)

func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	switch cfg.Storage.DB.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver requires a database URI", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxBodyBytes <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RateLimit <= 0 || cfg.Server.RateBurst <= 0 {
		return fmt.Errorf("%w: rate limit and burst must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.PurgeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (a App) validate() error {
	if !slices.Contains([]string{ModeDevelopment, ModeProduction}, a.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAppConfigs, a.Mode)
	}

	if a.ExpiryWindow <= 0 {
		return fmt.Errorf("%w: expiry window must be positive", ErrInvalidAppConfigs)
	}

	if a.KDFIterations < minKDFIterations || a.KDFIterations > maxKDFIterations {
		return fmt.Errorf("%w: kdf iterations must be between %d and %d", ErrInvalidAppConfigs, minKDFIterations, maxKDFIterations)
	}

	if a.IsProduction() {
		if a.AllowUnpepperedDedupe {
			return ErrUnpepperedInProduction
		}
		if a.DedupePepper == "" {
			return ErrMissingDedupePepper
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.KDFIterations < minKDFIterations || cfg.App.KDFIterations > maxKDFIterations {
		return ErrInvalidAppConfigs
	}

	return nil
}
