// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the account
// service.
//
// The primary abstraction is [ServerAdapter], which decouples the client CLI
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the account service.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. Both "Bearer <t>" and a raw "<t>" are accepted.
	SetToken(token string)

	// Token returns the raw token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and returns the stored record.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and, on success, stores the returned token via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	SetActive(ctx context.Context, id int64, active bool) (models.User, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
