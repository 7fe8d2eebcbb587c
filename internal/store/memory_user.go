// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-accounts/models"
)

// memoryUserRepository keeps users in process memory. Unique indexes on
// name, email and phone are maintained under the same mutex as the records,
// so a check and the write that depends on it are atomic.
type memoryUserRepository struct {
	mu      sync.RWMutex
	nextID  int64
	users   map[int64]models.User
	byName  map[string]int64
	byEmail map[string]int64
	byPhone map[string]int64
	now     func() time.Time
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return newMemoryUserRepository(time.Now)
}

func newMemoryUserRepository(now func() time.Time) *memoryUserRepository {
	return &memoryUserRepository{
		users:   make(map[int64]models.User),
		byName:  make(map[string]int64),
		byEmail: make(map[string]int64),
		byPhone: make(map[string]int64),
		now:     now,
	}
}

func (m *memoryUserRepository) FindByEmail(_ context.Context, email string) (models.User, error) {
	return m.findByIndex(m.byEmail, email)
}

func (m *memoryUserRepository) FindByName(_ context.Context, name string) (models.User, error) {
	return m.findByIndex(m.byName, name)
}

func (m *memoryUserRepository) FindByPhone(_ context.Context, phone string) (models.User, error) {
	return m.findByIndex(m.byPhone, phone)
}

func (m *memoryUserRepository) findByIndex(index map[string]int64, key string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := index[key]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return m.users[id], nil
}

func (m *memoryUserRepository) FindByID(_ context.Context, id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (m *memoryUserRepository) List(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	slices.SortFunc(users, func(a, b models.User) int {
		return cmp.Compare(a.UserID, b.UserID)
	})
	return users, nil
}

func (m *memoryUserRepository) Create(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkUnique(0, user.Name, user.Email, user.Phone); err != nil {
		return models.User{}, err
	}

	m.nextID++
	now := m.now()
	user.UserID = m.nextID
	user.CreatedAt = now
	user.UpdatedAt = now

	m.users[user.UserID] = user
	m.index(user)

	return user, nil
}

func (m *memoryUserRepository) Update(_ context.Context, id int64, update models.UserUpdate) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	next := current
	changed := false
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
			changed = true
		}
	}
	apply(&next.Name, update.Name)
	apply(&next.Email, update.Email)
	apply(&next.Phone, update.Phone)
	apply(&next.Country, update.Country)
	apply(&next.State, update.State)
	apply(&next.City, update.City)
	apply(&next.PasswordHash, update.PasswordHash)
	apply(&next.ImagePath, update.ImagePath)
	if update.Active != nil {
		next.Active = *update.Active
		changed = true
	}

	if !changed {
		return current, nil
	}

	if err := m.checkUnique(id, next.Name, next.Email, next.Phone); err != nil {
		return models.User{}, err
	}

	next.UpdatedAt = m.now()
	m.unindex(current)
	m.users[id] = next
	m.index(next)

	return next, nil
}

func (m *memoryUserRepository) SetActive(_ context.Context, id int64, active bool) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	user.Active = active
	user.UpdatedAt = m.now()
	m.users[id] = user

	return user, nil
}

// checkUnique reports the first attribute already held by a user other
// than self. Callers must hold the write lock.
func (m *memoryUserRepository) checkUnique(self int64, name, email, phone string) error {
	for _, c := range []struct {
		field string
		index map[string]int64
		key   string
	}{
		{"name", m.byName, name},
		{"email", m.byEmail, email},
		{"phone", m.byPhone, phone},
	} {
		if owner, taken := c.index[c.key]; taken && owner != self {
			return &UniqueViolationError{Field: c.field}
		}
	}
	return nil
}

func (m *memoryUserRepository) index(u models.User) {
	m.byName[u.Name] = u.UserID
	m.byEmail[u.Email] = u.UserID
	m.byPhone[u.Phone] = u.UserID
}

func (m *memoryUserRepository) unindex(u models.User) {
	delete(m.byName, u.Name)
	delete(m.byEmail, u.Email)
	delete(m.byPhone, u.Phone)
}

// memoryRoleRepository serves the roles the migration seeds.
type memoryRoleRepository struct {
	roles map[string]models.Role
}

// NewMemoryRoleRepository returns a [RoleRepository] holding the admin and
// normal roles.
func NewMemoryRoleRepository() RoleRepository {
	return &memoryRoleRepository{
		roles: map[string]models.Role{
			models.RoleAdmin:  {RoleID: 1, Name: models.RoleAdmin},
			models.RoleNormal: {RoleID: 2, Name: models.RoleNormal},
		},
	}
}

func (m *memoryRoleRepository) FindRoleByName(_ context.Context, name string) (models.Role, error) {
	role, ok := m.roles[name]
	if !ok {
		return models.Role{}, ErrRoleNotFound
	}
	return role, nil
}
