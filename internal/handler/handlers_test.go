package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/service"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func serverConfig(address string) config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{
			HTTPAddress: address,
			RateLimit:   config.DefaultRateLimit,
			RateBurst:   config.DefaultRateBurst,
		},
	}
}

func TestNewHandlers_HTTP(t *testing.T) {
	h, err := NewHandlers(newTestServices(), nil, serverConfig(":8080"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), nil, serverConfig(""), logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := serverConfig(":8080")

	h1, err1 := NewHandlers(newTestServices(), nil, cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), nil, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
