package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(i int) models.User {
	return models.User{
		Name:         fmt.Sprintf("user%d", i),
		Email:        fmt.Sprintf("user%d@example.com", i),
		Phone:        fmt.Sprintf("555000%d", i),
		Country:      "US",
		State:        "NY",
		City:         "NYC",
		PasswordHash: "hash",
		Active:       true,
	}
}

func TestMemory_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepository(func() time.Time { return testNow })

	created, err := repo.Create(ctx, newUser(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, testNow, created.CreatedAt)

	for name, find := range map[string]func() (models.User, error){
		"email": func() (models.User, error) { return repo.FindByEmail(ctx, "user1@example.com") },
		"name":  func() (models.User, error) { return repo.FindByName(ctx, "user1") },
		"phone": func() (models.User, error) { return repo.FindByPhone(ctx, "5550001") },
		"id":    func() (models.User, error) { return repo.FindByID(ctx, 1) },
	} {
		got, err := find()
		require.NoError(t, err, name)
		assert.Equal(t, created, got, name)
	}

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.FindByID(ctx, 77)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemory_CreateUniqueViolation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	_, err := repo.Create(ctx, newUser(1))
	require.NoError(t, err)

	tests := []struct {
		field  string
		mutate func(u *models.User)
	}{
		{"name", func(u *models.User) { u.Name = "user1" }},
		{"email", func(u *models.User) { u.Email = "user1@example.com" }},
		{"phone", func(u *models.User) { u.Phone = "5550001" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			u := newUser(2)
			tt.mutate(&u)

			_, err := repo.Create(ctx, u)
			var uv *UniqueViolationError
			require.True(t, errors.As(err, &uv))
			assert.Equal(t, tt.field, uv.Field)
			assert.ErrorIs(t, err, ErrUniqueViolation)
		})
	}
}

func TestMemory_ConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := newUser(100 + i)
			u.Email = "same@example.com"
			_, errs[i] = repo.Create(ctx, u)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrUniqueViolation)
	}
	assert.Equal(t, 1, succeeded)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestMemory_List_Ordered(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	for i := 1; i <= 5; i++ {
		_, err := repo.Create(ctx, newUser(i))
		require.NoError(t, err)
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)
	for i, u := range users {
		assert.Equal(t, int64(i+1), u.UserID)
	}
}

func TestMemory_Update(t *testing.T) {
	ctx := context.Background()
	clock := testNow
	repo := newMemoryUserRepository(func() time.Time { return clock })

	created, err := repo.Create(ctx, newUser(1))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newUser(2))
	require.NoError(t, err)

	clock = testNow.Add(time.Minute)
	newEmail := "fresh@example.com"
	city := "Boston"
	updated, err := repo.Update(ctx, created.UserID, models.UserUpdate{Email: &newEmail, City: &city})
	require.NoError(t, err)

	assert.Equal(t, newEmail, updated.Email)
	assert.Equal(t, city, updated.City)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, clock, updated.UpdatedAt)

	// old email is released, new one is indexed
	_, err = repo.FindByEmail(ctx, "user1@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	got, err := repo.FindByEmail(ctx, newEmail)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, got.UserID)

	// keeping one's own value is not a collision
	sameName := created.Name
	_, err = repo.Update(ctx, created.UserID, models.UserUpdate{Name: &sameName})
	require.NoError(t, err)

	// taking someone else's value is
	taken := "user2"
	_, err = repo.Update(ctx, created.UserID, models.UserUpdate{Name: &taken})
	assert.ErrorIs(t, err, ErrUniqueViolation)

	_, err = repo.Update(ctx, 99, models.UserUpdate{City: &city})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemory_UpdateEmptyReturnsCurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	created, err := repo.Create(ctx, newUser(1))
	require.NoError(t, err)

	got, err := repo.Update(ctx, created.UserID, models.UserUpdate{})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemory_SetActive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	created, err := repo.Create(ctx, newUser(1))
	require.NoError(t, err)

	off, err := repo.SetActive(ctx, created.UserID, false)
	require.NoError(t, err)
	assert.False(t, off.Active)

	on, err := repo.SetActive(ctx, created.UserID, true)
	require.NoError(t, err)
	assert.True(t, on.Active)
	assert.Equal(t, created.Email, on.Email)

	_, err = repo.SetActive(ctx, 404, true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryRoleRepository(t *testing.T) {
	repo := NewMemoryRoleRepository()

	admin, err := repo.FindRoleByName(context.Background(), models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Name)

	_, err = repo.FindRoleByName(context.Background(), "root")
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestNewStorages_Memory(t *testing.T) {
	for _, dsn := range []string{"", "memory", "  memory "} {
		s, err := NewStorages(context.Background(), configFor(dsn), nopLogger())
		require.NoError(t, err)
		require.NotNil(t, s.UserRepository)
		require.NotNil(t, s.RoleRepository)
		assert.NoError(t, s.Close())
	}
}
