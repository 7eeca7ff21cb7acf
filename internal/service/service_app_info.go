package service

import (
	"context"

	"github.com/MKhiriev/go-seal-doc/internal/config"
	"github.com/MKhiriev/go-seal-doc/internal/crypto"
	"github.com/MKhiriev/go-seal-doc/models"
)

type appInfoService struct {
	info models.AppInfo
}

// NewAppInfoService snapshots the public deployment facts once; they never
// change while the process runs.
func NewAppInfoService(cfg config.App, tagger crypto.Tagger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:      cfg.Version,
			ExpiryWindow: cfg.ExpiryWindow.String(),
			DedupeMode:   string(tagger.Mode()),
		},
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
