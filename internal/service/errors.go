package service

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/config"
)

var (
	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation failed")

	// ErrConflict is matched by every [*ConflictError].
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials is the single error returned for any failed
	// login, whether the account is unknown or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid is returned for any token that fails verification.
	// The wrapped cause is one of ErrTokenExpired or ErrTokenMalformed and is
	// meant for logs only.
	ErrTokenInvalid = errors.New("token is invalid")

	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenMalformed = errors.New("token is malformed")

	ErrUserNotFound = errors.New("user not found")

	// ErrInternal wraps unexpected failures of collaborators. Its detail is
	// logged, never shown to callers.
	ErrInternal = errors.New("internal error")

	// ErrMissingTokenSignKey is the configuration error raised at startup
	// when no signing secret is set.
	ErrMissingTokenSignKey = config.ErrMissingTokenSignKey
)

// ValidationError reports malformed or missing input, keyed by JSON field
// name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// ConflictError reports that a unique attribute is already taken.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "account already exists"
	}
	return e.Field + " is already taken"
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// ErrorKind is the coarse category of a service error. Transport layers
// map kinds, not individual errors, to status codes.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
	KindConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindConfiguration:
		return "configuration"
	default:
		return "internal"
	}
}

// KindOf classifies err. Unknown errors are [KindInternal].
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrTokenInvalid):
		return KindAuth
	case errors.Is(err, ErrUserNotFound):
		return KindNotFound
	case errors.Is(err, ErrMissingTokenSignKey):
		return KindConfiguration
	default:
		return KindInternal
	}
}
