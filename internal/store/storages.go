package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
)

// MemoryDSN selects the in-memory store.
const MemoryDSN = "memory"

// Storages bundles the repositories the services depend on.
type Storages struct {
	UserRepository UserRepository
	RoleRepository RoleRepository

	db *DB
}

// NewStorages opens the store selected by cfg.DB.DSN. An empty DSN or
// [MemoryDSN] selects the in-memory repositories; anything else is treated
// as a PostgreSQL connection string, migrated on open.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == "" || dsn == MemoryDSN {
		log.Warn().Str("func", "NewStorages").Msg("using in-memory user store, data will not survive a restart")
		return NewMemoryStorages(), nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		RoleRepository: NewRoleRepository(db),
		db:             db,
	}, nil
}

// NewMemoryStorages returns in-memory repositories.
func NewMemoryStorages() *Storages {
	return &Storages{
		UserRepository: NewMemoryUserRepository(),
		RoleRepository: NewMemoryRoleRepository(),
	}
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
