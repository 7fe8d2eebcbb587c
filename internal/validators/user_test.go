package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Phone:    "5551234",
		Country:  "US",
		State:    "CA",
		City:     "LA",
		Password: "secret1",
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fe FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %v", err)
	return fe
}

func TestNewUserValidator(t *testing.T) {
	assert.NotPanics(t, func() { require.NotNil(t, NewUserValidator()) })
}

func TestRegisterValidations_ReportsFailure(t *testing.T) {
	tests := map[string]map[string]validator.Func{
		"empty tag": {"": customValidations["notblank"]},
		"nil func":  {"notblank": nil},
	}

	for name, funcs := range tests {
		t.Run(name, func(t *testing.T) {
			err := registerValidations(validator.New(), funcs)
			assert.Error(t, err)
		})
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewUserValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}), ErrUnsupportedType)
}

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(r *models.RegisterRequest)
		wantFields map[string]string
	}{
		{
			name:   "valid",
			mutate: func(*models.RegisterRequest) {},
		},
		{
			name:       "empty name",
			mutate:     func(r *models.RegisterRequest) { r.Name = "" },
			wantFields: map[string]string{"name": "is required"},
		},
		{
			name:       "blank city",
			mutate:     func(r *models.RegisterRequest) { r.City = "   " },
			wantFields: map[string]string{"city": "is required"},
		},
		{
			name:       "bad email",
			mutate:     func(r *models.RegisterRequest) { r.Email = "not-an-email" },
			wantFields: map[string]string{"email": "must be a valid email address"},
		},
		{
			name:       "empty email",
			mutate:     func(r *models.RegisterRequest) { r.Email = "" },
			wantFields: map[string]string{"email": "is required"},
		},
		{
			name:       "short password",
			mutate:     func(r *models.RegisterRequest) { r.Password = "12345" },
			wantFields: map[string]string{"password": "must be at least 6 characters"},
		},
		{
			name:       "long password",
			mutate:     func(r *models.RegisterRequest) { r.Password = strings.Repeat("p", 73) },
			wantFields: map[string]string{"password": "must be at most 72 characters"},
		},
		{
			name: "several fields",
			mutate: func(r *models.RegisterRequest) {
				r.Phone = ""
				r.Country = ""
				r.State = ""
			},
			wantFields: map[string]string{
				"phone":   "is required",
				"country": "is required",
				"state":   "is required",
			},
		},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, FieldErrors(tt.wantFields), fieldErrors(t, err))

			// pointer form behaves the same
			assert.Equal(t, FieldErrors(tt.wantFields), fieldErrors(t, v.Validate(context.Background(), &req)))
		})
	}
}

func TestValidate_RegisterRequest_FieldScoping(t *testing.T) {
	req := validRegisterRequest()
	req.Name = ""
	req.Email = "bad"

	v := NewUserValidator()

	fe := fieldErrors(t, v.Validate(context.Background(), req, "email"))
	assert.Equal(t, FieldErrors{"email": "must be a valid email address"}, fe)

	assert.NoError(t, v.Validate(context.Background(), req, "city"))
}

func TestValidate_Credentials(t *testing.T) {
	v := NewUserValidator()

	assert.NoError(t, v.Validate(context.Background(), models.Credentials{Identifier: "alice", Password: "x"}))

	fe := fieldErrors(t, v.Validate(context.Background(), &models.Credentials{Identifier: " ", Password: ""}))
	assert.Equal(t, FieldErrors{"identifier": "is required", "password": "is required"}, fe)
}

func TestValidate_UserUpdate(t *testing.T) {
	v := NewUserValidator()

	assert.NoError(t, v.Validate(context.Background(), models.UserUpdate{}))
	assert.NoError(t, v.Validate(context.Background(), models.UserUpdate{
		City:      ptr("Boston"),
		Email:     ptr("new@example.com"),
		Password:  ptr("longenough"),
		ImagePath: ptr(""),
		Active:    ptr(false),
	}))

	fe := fieldErrors(t, v.Validate(context.Background(), models.UserUpdate{
		Name:     ptr(""),
		Email:    ptr("nope"),
		Password: ptr("123"),
	}))
	assert.Equal(t, FieldErrors{
		"name":     "is required",
		"email":    "must be a valid email address",
		"password": "must be at least 6 characters",
	}, fe)
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{"name": "is required", "email": "must be a valid email address"}
	assert.Equal(t, "validation failed: email: must be a valid email address; name: is required", fe.Error())
}
