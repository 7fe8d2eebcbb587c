package service

import (
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/crypto"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

type Services struct {
	AccountService AccountService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires the service layer on top of storages. Every wrapper is
// applied to the account service in the given order, the last one being the
// outermost.
func NewServices(
	storages *store.Storages,
	cfg *config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
	wrappers ...AccountServiceWrapper,
) (*Services, error) {
	tokens, err := NewTokenService(cfg.App)
	if err != nil {
		logger.Err(err).Str("func", "NewServices").Msg("token service creation failed")
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, build)
	if err != nil {
		logger.Err(err).Str("func", "NewServices").Msg("app info service creation failed")
		return nil, err
	}

	var accounts AccountService = NewAccountService(
		storages.UserRepository,
		crypto.NewPasswordHasher(cfg.App.PasswordHashCost),
		tokens,
		validators.NewUserValidator(),
	)
	for _, w := range wrappers {
		accounts = w.Wrap(accounts)
	}

	return &Services{
		AccountService: accounts,
		TokenService:   tokens,
		AppInfoService: appInfo,
	}, nil
}
