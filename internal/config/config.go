// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Application modes.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Storage drivers accepted by STORAGE_DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// StructuredConfig is the top-level configuration container for the
// go-seal-doc server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds engine-level settings: mode, dedupe pepper, expiry window,
	// KDF cost and the cron secret.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the document store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and abuse-protection settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the command-line client to reach a
	// running server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds engine-level configuration.
type App struct {
	// Mode is either "development" or "production". Production refuses to
	// start without a dedupe pepper.
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DedupePepper is the server secret used to blind content fingerprints.
	// Must be kept confidential.
	// Env: APP_DEDUPE_PEPPER
	DedupePepper string `env:"DEDUPE_PEPPER"`

	// AllowUnpepperedDedupe opts into storing raw fingerprints as dedupe tags
	// when no pepper is configured. Development only.
	// Env: APP_ALLOW_UNPEPPERED_DEDUPE
	AllowUnpepperedDedupe bool `env:"ALLOW_UNPEPPERED_DEDUPE"`

	// ExpiryWindow is how long a document stays readable after creation.
	// Env: APP_EXPIRY_WINDOW
	ExpiryWindow time.Duration `env:"EXPIRY_WINDOW"`

	// KDFIterations is the PBKDF2 iteration count recorded on new documents.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// CronSecret authorises GET /api/cron/cleanup. The endpoint is disabled
	// when empty.
	// Env: APP_CRON_SECRET
	CronSecret string `env:"CRON_SECRET"`
}

// Server holds network and abuse-protection settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes caps request bodies on write endpoints.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size of the per-IP limiter.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`

	// AllowedOrigins lists CORS origins, comma separated in the environment.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Storage groups the configuration for the document store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the document store backend.
type DB struct {
	// Driver selects the backend: "postgres", "sqlite" or "memory".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string: a PostgreSQL URI or an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings the command-line client uses to reach a server.
type Adapter struct {
	// HTTPAddress is the base URL of the server (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request made by the client.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PurgeInterval is the period of the background purge worker.
	// Env: WORKERS_PURGE_INTERVAL
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`
}

// IsProduction reports whether the server runs in production mode.
func (a App) IsProduction() bool {
	return a.Mode == ModeProduction
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Environment variables (after loading .env, if present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
