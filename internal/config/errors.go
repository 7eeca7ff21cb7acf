package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")

	// ErrMissingDedupePepper is returned in production mode when no pepper is
	// configured. It wraps [ErrInvalidAppConfigs].
	ErrMissingDedupePepper = fmt.Errorf("%w: dedupe pepper is required in production mode", ErrInvalidAppConfigs)

	// ErrUnpepperedInProduction is returned when unpeppered dedupe is
	// requested in production mode. It wraps [ErrInvalidAppConfigs].
	ErrUnpepperedInProduction = fmt.Errorf("%w: unpeppered dedupe is not allowed in production mode", ErrInvalidAppConfigs)
)
