package config

import "time"

// Default values applied when no other source sets a field.
const (
	DefaultExpiryWindow   = 48 * time.Hour
	DefaultKDFIterations  = 310_000
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodyBytes   = 512 * 1024
	DefaultRateLimit      = 5
	DefaultRateBurst      = 20
	DefaultPurgeInterval  = time.Hour
	DefaultAdapterAddress = "http://localhost:8080"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Mode:          ModeProduction,
			Version:       "dev",
			ExpiryWindow:  DefaultExpiryWindow,
			KDFIterations: DefaultKDFIterations,
		},
		Storage: Storage{
			DB: DB{Driver: DriverMemory},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodyBytes:   DefaultMaxBodyBytes,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
			AllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			PurgeInterval: DefaultPurgeInterval,
		},
	}
}
