package store

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Implementations enforce uniqueness
// of name, email and phone themselves and report a collision as
// [*UniqueViolationError]; a missing user is reported as [ErrUserNotFound].
//
// Returned records carry the password hash. Stripping it is the caller's job.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByName(ctx context.Context, name string) (models.User, error)
	FindByPhone(ctx context.Context, phone string) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	List(ctx context.Context) ([]models.User, error)

	// Create inserts user and returns it with the store-assigned ID and
	// timestamps.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update writes only the non-nil fields of update. An update with no
	// fields returns the current record unchanged.
	Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	SetActive(ctx context.Context, id int64, active bool) (models.User, error)
}

// RoleRepository reads the fixed set of roles.
type RoleRepository interface {
	FindRoleByName(ctx context.Context, name string) (models.Role, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
