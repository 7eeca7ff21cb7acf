package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/crypto"
	"github.com/MKhiriev/go-seal-doc/internal/handler"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/metrics"
	"github.com/MKhiriev/go-seal-doc/internal/service"
	"github.com/MKhiriev/go-seal-doc/internal/store"
	"github.com/MKhiriev/go-seal-doc/models"
)

func newTestHandlers(t *testing.T, cfg config.StructuredConfig) *handler.Handlers {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	documentCrypto, err := crypto.NewDocumentCrypto(crypto.DefaultKDFParams())
	require.NoError(t, err)
	tagger, err := crypto.NewDedupeTagger("pepper", false)
	require.NoError(t, err)

	collectors := metrics.NewWithRegistry(prometheus.NewRegistry())
	services, err := service.NewServices(storages, documentCrypto, tagger, collectors, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(services.PurgeDispatcher.Wait)

	handlers, err := handler.NewHandlers(services, collectors, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func testConfig(address string) config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Mode:          config.ModeDevelopment,
			Version:       "1.2.3",
			ExpiryWindow:  time.Hour,
			KDFIterations: crypto.DefaultKDFIterations,
		},
		Storage: config.Storage{DB: config.DB{Driver: config.DriverMemory}},
		Server: config.Server{
			HTTPAddress:    address,
			RequestTimeout: 5 * time.Second,
			MaxBodyBytes:   config.DefaultMaxBodyBytes,
			RateLimit:      100,
			RateBurst:      100,
			AllowedOrigins: []string{"*"},
		},
	}
}

// addr blocks until the listener is bound and returns its address.
func (s *server) addr() net.Addr {
	a := <-s.httpServer.ready
	s.httpServer.ready <- a
	return a
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)

	srv, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	cfg := testConfig("127.0.0.1:0")
	s, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	url := "http://" + s.(*server).addr().String() + "/api/version"
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info models.AppInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "1.2.3", info.Version)

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_ListenFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := testConfig(taken.Addr().String())
	s, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
