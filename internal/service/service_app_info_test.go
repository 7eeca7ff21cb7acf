package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/crypto"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func newTestTagger(t *testing.T) crypto.Tagger {
	t.Helper()
	tagger, err := crypto.NewDedupeTagger("test-pepper", false)
	require.NoError(t, err)
	return tagger
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, newTestTagger(t))

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ─────────────────────────────────────────────
// GetAppInfo
// ─────────────────────────────────────────────

func TestGetAppInfo_ReportsDeployment(t *testing.T) {
	cfg := config.App{Version: "v1.2.3-beta+build.42", ExpiryWindow: 48 * time.Hour}

	svc, err := NewAppInfoService(cfg, newTestTagger(t))
	require.NoError(t, err)

	info := svc.GetAppInfo(context.Background())
	assert.Equal(t, "v1.2.3-beta+build.42", info.Version)
	assert.Equal(t, "48h0m0s", info.ExpiryWindow)
	assert.Equal(t, string(crypto.TagModePeppered), info.DedupeMode)
}

func TestGetAppInfo_Unpeppered(t *testing.T) {
	tagger, err := crypto.NewDedupeTagger("", true)
	require.NoError(t, err)

	svc, err := NewAppInfoService(config.App{Version: "dev", ExpiryWindow: time.Hour}, tagger)
	require.NoError(t, err)

	assert.Equal(t, string(crypto.TagModeUnpeppered), svc.GetAppInfo(context.Background()).DedupeMode)
}

func TestGetAppInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, newTestTagger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppInfo(ctx).Version)
}
