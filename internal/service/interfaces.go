package service

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService manages user accounts. Every returned user record has its
// password hash stripped.
type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	SetActive(ctx context.Context, id int64, active bool) (models.User, error)
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)
	Verify(ctx context.Context, tokenString string) (models.Claims, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// metrics.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}
