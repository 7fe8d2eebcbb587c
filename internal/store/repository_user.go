package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account persistence against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Country,
		&user.State,
		&user.City,
		&user.PasswordHash,
		&user.Active,
		&user.ImagePath,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *userRepository) FindByName(ctx context.Context, name string) (models.User, error) {
	return r.findOne(ctx, "name", name)
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (models.User, error) {
	return r.findOne(ctx, "phone", phone)
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "user_id", id)
}

func (r *userRepository) findOne(ctx context.Context, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "userRepository.findOne").Str("column", column).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.DB.QueryRowContext(ctx, query, args...))
	return user, r.mapRowError(ctx, "userRepository.findOne", err)
}

// List returns every user ordered by ID.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "userRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.List").
			Stringer("classification", r.classify(err)).
			Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "userRepository.List").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "userRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// Create persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [*UniqueViolationError] naming
//     the colliding attribute.
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.Create").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.mapRowError(ctx, "userRepository.Create", err)
	}

	log.Info().Str("func", "userRepository.Create").Int64("user_id", created.UserID).Msg("user created")
	return created, nil
}

// Update applies the non-nil fields of update to the user with the given id.
func (r *userRepository) Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, ok, err := buildUpdateUserQuery(id, update, r.now())
	if err != nil {
		log.Err(err).Str("func", "userRepository.Update").Int64("user_id", id).Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if !ok {
		log.Debug().Str("func", "userRepository.Update").Int64("user_id", id).Msg("no fields to update, returning current record")
		return r.FindByID(ctx, id)
	}

	updated, err := scanUser(r.DB.QueryRowContext(ctx, query, args...))
	return updated, r.mapRowError(ctx, "userRepository.Update", err)
}

func (r *userRepository) SetActive(ctx context.Context, id int64, active bool) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetActiveQuery(id, active, r.now())
	if err != nil {
		log.Err(err).Str("func", "userRepository.SetActive").Int64("user_id", id).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.DB.QueryRowContext(ctx, query, args...))
	return updated, r.mapRowError(ctx, "userRepository.SetActive", err)
}

// mapRowError translates the error of a single-row statement into the
// repository's error vocabulary. A nil err is returned unchanged.
func (r *userRepository) mapRowError(ctx context.Context, funcName string, err error) error {
	if err == nil {
		return nil
	}
	log := logger.FromContext(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	if uv := asUniqueViolation(err); uv != nil {
		log.Warn().Str("func", funcName).Str("field", uv.Field).Msg("unique constraint violated")
		return uv
	}

	log.Err(err).
		Str("func", funcName).
		Stringer("classification", r.classify(err)).
		Msg("unexpected DB error")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
