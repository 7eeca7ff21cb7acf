// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds the client-side encryption settings.
type ClientApp struct {
	KDFIterations int
}

// ClientAdapter holds the connection settings of the client.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter

	// Args are the positional arguments left after flag parsing
	// (the subcommand and its operands).
	Args []string
}

// GetClientConfig loads the client configuration from the same sources as
// [GetStructuredConfig]. Server-only settings are ignored.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	b := newConfigBuilder(args).
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults()

	cfg, err := b.merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			KDFIterations: cfg.App.KDFIterations,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Args: b.rest,
	}

	return clientCfg, clientCfg.validate()
}
