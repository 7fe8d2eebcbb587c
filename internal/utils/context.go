// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and trace identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the authorization middleware stores
// the verified token claims of the caller.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, claims)
var ClaimsCtxKey = contextKey("claims")

// RemoteAddrCtxKey is the key under which the trace middleware stores the
// source address of the request.
var RemoteAddrCtxKey = contextKey("remoteAddr")

// GetClaimsFromContext retrieves the caller's verified claims from ctx.
//
// Returns the claims and an ok flag:
//   - ok == true: value is found and has the models.Claims type
//   - ok == false: value is missing or has an unexpected type
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// GetUserIDFromContext retrieves the caller's user identifier from the
// claims stored in ctx.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// WithRemoteAddr returns a copy of ctx carrying the request source address.
func WithRemoteAddr(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, RemoteAddrCtxKey, addr)
}

// GetRemoteAddrFromContext returns the request source address stored in ctx,
// or an empty string.
func GetRemoteAddrFromContext(ctx context.Context) string {
	addr, _ := ctx.Value(RemoteAddrCtxKey).(string)
	return addr
}
