// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package seed creates the bootstrap accounts of a fresh installation.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/crypto"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/models"
)

var (
	// ErrMissingPassword is returned by Seed when no password is given.
	ErrMissingPassword = errors.New("seed password is not specified")

	// ErrNonPersistentStore is returned by CheckDSN for an empty or in-memory
	// DSN, whose accounts would vanish when the seed command exits.
	ErrNonPersistentStore = errors.New("seeding requires a database DSN, the in-memory store does not persist")
)

// CheckDSN rejects DSNs that select the in-memory store.
func CheckDSN(dsn string) error {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" || dsn == store.MemoryDSN {
		return ErrNonPersistentStore
	}
	return nil
}

// Account describes one bootstrap account. RoleName is optional.
type Account struct {
	Name      string
	Email     string
	Phone     string
	Country   string
	State     string
	City      string
	ImagePath string
	RoleName  string
}

// DefaultAccounts are the administrator and a dummy normal user.
var DefaultAccounts = []Account{
	{
		Name:      "admin",
		Email:     "admin@example.com",
		Phone:     "0000000000",
		Country:   "AdminLand",
		State:     "AdminState",
		City:      "AdminCity",
		ImagePath: "uploads/users/admin/dummy.png",
		RoleName:  models.RoleAdmin,
	},
	{
		Name:      "dummyuser",
		Email:     "dummyuser@example.com",
		Phone:     "0000000001",
		Country:   "DummyLand",
		State:     "DummyState",
		City:      "DummyCity",
		ImagePath: "uploads/users/dummyuser/dummy.png",
	},
}

type Seeder struct {
	users  store.UserRepository
	roles  store.RoleRepository
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

func NewSeeder(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) *Seeder {
	return &Seeder{
		users:  storages.UserRepository,
		roles:  storages.RoleRepository,
		hasher: hasher,
		logger: logger,
	}
}

// Seed creates every account whose e-mail and name are both still free and
// returns the created records. Existing accounts are left untouched, so
// running Seed twice is harmless.
func (s *Seeder) Seed(ctx context.Context, password string, accounts ...Account) ([]models.User, error) {
	if password == "" {
		return nil, ErrMissingPassword
	}

	created := make([]models.User, 0, len(accounts))
	for _, account := range accounts {
		exists, err := s.exists(ctx, account)
		if err != nil {
			return created, err
		}
		if exists {
			s.logger.Info().Str("name", account.Name).Msg("account already exists, skipping")
			continue
		}

		user, err := s.create(ctx, account, password)
		if err != nil {
			return created, err
		}

		s.logger.Info().Int64("id", user.UserID).Str("name", user.Name).Msg("account created")
		created = append(created, user.Sanitized())
	}

	return created, nil
}

func (s *Seeder) exists(ctx context.Context, account Account) (bool, error) {
	_, err := s.users.FindByEmail(ctx, account.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		_, err = s.users.FindByName(ctx, account.Name)
	}

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrUserNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("error looking up account %q: %w", account.Name, err)
	}
}

func (s *Seeder) create(ctx context.Context, account Account, password string) (models.User, error) {
	user := models.User{
		Name:      account.Name,
		Email:     account.Email,
		Phone:     account.Phone,
		Country:   account.Country,
		State:     account.State,
		City:      account.City,
		ImagePath: account.ImagePath,
		Active:    true,
	}

	if account.RoleName != "" {
		role, err := s.roles.FindRoleByName(ctx, account.RoleName)
		if err != nil {
			return models.User{}, fmt.Errorf("error finding role %q: %w", account.RoleName, err)
		}
		user.RoleID = &role.RoleID
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("error creating account %q: %w", account.Name, err)
	}
	return created, nil
}
