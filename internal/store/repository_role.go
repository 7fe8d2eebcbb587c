package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

type roleRepository struct {
	*DB
}

// NewRoleRepository constructs a PostgreSQL-backed [RoleRepository].
func NewRoleRepository(db *DB) RoleRepository {
	return &roleRepository{DB: db}
}

func (r *roleRepository) FindRoleByName(ctx context.Context, name string) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindRoleByNameQuery(name)
	if err != nil {
		return models.Role{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var role models.Role
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&role.RoleID, &role.Name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Role{}, ErrRoleNotFound
	case err != nil:
		log.Err(err).Str("func", "roleRepository.FindRoleByName").Str("role", name).Msg("failed to find role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return role, nil
}
