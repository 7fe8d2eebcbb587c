package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup or update targets a user
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrRoleNotFound is returned when no role with the requested name exists.
	ErrRoleNotFound = errors.New("role not found")

	// ErrUniqueViolation is matched by every [*UniqueViolationError].
	ErrUniqueViolation = errors.New("unique constraint violated")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan user rows")
)

// UniqueViolationError reports which unique user attribute a write collided
// on. Field is one of "name", "email" or "phone", or empty when the
// constraint could not be attributed.
type UniqueViolationError struct {
	Field string
}

func (e *UniqueViolationError) Error() string {
	if e.Field == "" {
		return ErrUniqueViolation.Error()
	}
	return fmt.Sprintf("%s: %s is already taken", ErrUniqueViolation, e.Field)
}

// Is makes errors.Is(err, ErrUniqueViolation) hold for every
// UniqueViolationError.
func (e *UniqueViolationError) Is(target error) bool {
	return target == ErrUniqueViolation
}
