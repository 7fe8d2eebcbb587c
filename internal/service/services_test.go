package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/models"
)

func TestNewServices_OnlySignKey(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{TokenSignKey: "secret"}}

	services, err := service.NewServices(store.NewMemoryStorages(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, services)

	assert.Equal(t, models.NotAvailable, services.AppInfoService.GetAppVersion(context.Background()))
	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.TokenService)
}

func TestNewServices_MissingSignKey(t *testing.T) {
	_, err := service.NewServices(store.NewMemoryStorages(), &config.StructuredConfig{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.ErrorIs(t, err, service.ErrMissingTokenSignKey)
}
