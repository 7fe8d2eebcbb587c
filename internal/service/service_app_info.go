package service

import (
	"context"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/models"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService prefers the version linked into the binary and falls
// back to cfg.Version. When neither is set the version is reported as
// models.NotAvailable.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo) (AppInfoService, error) {
	version := build.BuildVersion()
	if version == "" || version == models.NotAvailable {
		version = cfg.Version
	}
	if version == "" {
		version = models.NotAvailable
	}

	return &appInfoService{
		appVersion: version,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
