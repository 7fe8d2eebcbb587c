// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	req := models.RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "secret123"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/create", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var got models.RegisterRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req.Email, got.Email)

		writeJSON(t, w, http.StatusCreated, models.User{UserID: 1, Name: got.Name, Email: got.Email})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "email is already taken", Field: "email"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email is already taken")
}

func TestRegister_ValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ValidationErrorResponse{Errors: map[string]string{
			"email": "must be a valid email address",
			"city":  "is required",
		}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "city is required, email must be a valid email address")
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer header.jwt.token")
		writeJSON(t, w, http.StatusOK, models.LoginResponse{User: models.User{UserID: 3}, Token: "Bearer header.jwt.token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Login(context.Background(), models.Credentials{Identifier: "alice", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.User.UserID)
	assert.Equal(t, "header.jwt.token", a.Token())
}

func TestLogin_TokenFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Token: "Bearer body.jwt.token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{})

	require.NoError(t, err)
	assert.Equal(t, "body.jwt.token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ── protected calls ─────────────────────────────────────────────────────────

func TestProtectedCalls_SendBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/users":
			writeJSON(t, w, http.StatusOK, []models.User{{UserID: 1}, {UserID: 2}})
		case r.Method == http.MethodGet && r.URL.Path == "/users/2":
			writeJSON(t, w, http.StatusOK, models.User{UserID: 2})
		case r.Method == http.MethodPut && r.URL.Path == "/users/2":
			var update models.UserUpdate
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&update))
			writeJSON(t, w, http.StatusOK, models.User{UserID: 2, City: *update.City})
		case r.Method == http.MethodPatch && r.URL.Path == "/users/2/active":
			var req models.SetActiveRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			writeJSON(t, w, http.StatusOK, models.User{UserID: 2, Active: *req.Active})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("Bearer stored-token")
	ctx := context.Background()

	users, err := a.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	user, err := a.GetUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.UserID)

	city := "Boston"
	user, err = a.UpdateUser(ctx, 2, models.UserUpdate{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Boston", user.City)

	user, err = a.SetActive(ctx, 2, true)
	require.NoError(t, err)
	assert.True(t, user.Active)
}

func TestProtectedCalls_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "no token", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "bad token", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "missing user", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server failure", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.ErrorResponse{Error: http.StatusText(tt.status)})
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), 1)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}

// ── token handling ──────────────────────────────────────────────────────────

func TestSetToken(t *testing.T) {
	a := newTestAdapter(t, "localhost:1")

	for input, want := range map[string]string{
		"Bearer abc":  "abc",
		"bearer abc":  "abc",
		"  raw-tok  ": "raw-tok",
		"":            "",
	} {
		a.SetToken(input)
		assert.Equal(t, want, a.Token(), input)
	}
}

func TestNewHTTPServerAdapter_TokenFromConfig(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:1", Token: "Bearer cfg"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "cfg", a.Token())
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Error(t, err)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
