package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-accounts/internal/crypto"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

// dummyPassword is hashed once and verified against on logins for unknown
// identifiers, so that both failure paths pay for one bcrypt comparison.
const dummyPassword = "go-accounts:dummy-password"

// fallbackDummyHash is a well-formed cost-10 bcrypt hash used when hashing
// dummyPassword fails, so the unknown-identifier path still runs a full
// comparison.
const fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// accountService is the concrete implementation of AccountService.
type accountService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokens         TokenService
	validator      validators.Validator

	dummyHashOnce sync.Once
	dummyHash     string
}

// NewAccountService constructs an AccountService from its collaborators.
//
// The returned service holds no mutable state besides the lazily computed
// dummy hash and is safe for concurrent use.
func NewAccountService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens TokenService,
	validator validators.Validator,
) AccountService {
	return &accountService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validator,
	}
}

// Register creates a new account.
//
// Uniqueness is pre-checked in the order email, name, phone and the first
// collision is reported as a *ConflictError. A collision the store detects
// after the pre-check (two concurrent registrations) is reported the same
// way. The returned user never carries the password hash.
func (s *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("registration rejected")
		return models.User{}, err
	}

	for _, check := range []struct {
		field string
		find  func(context.Context, string) (models.User, error)
		value string
	}{
		{field: "email", find: s.userRepository.FindByEmail, value: req.Email},
		{field: "name", find: s.userRepository.FindByName, value: req.Name},
		{field: "phone", find: s.userRepository.FindByPhone, value: req.Phone},
	} {
		_, err := check.find(ctx, check.value)
		switch {
		case err == nil:
			log.Info().Str("field", check.field).Msg("registration conflict")
			return models.User{}, &ConflictError{Field: check.field}
		case errors.Is(err, store.ErrUserNotFound):
		default:
			log.Err(err).Str("field", check.field).Msg("uniqueness check failed")
			return models.User{}, fmt.Errorf("%w: uniqueness check on %s: %w", ErrInternal, check.field, err)
		}
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		log.Debug().Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	created, err := s.userRepository.Create(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Country:      req.Country,
		State:        req.State,
		City:         req.City,
		PasswordHash: hash,
		Active:       req.Active.Bool(true),
		ImagePath:    req.ImagePath,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("user registered")
	return created.Sanitized(), nil
}

// Login authenticates by e-mail or account name and issues a session token.
//
// Unknown identifiers and wrong passwords both yield ErrInvalidCredentials.
// Account activity is not checked.
func (s *accountService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx).With().
		Str("identifier", credentials.Identifier).
		Str("remote_addr", utils.GetRemoteAddrFromContext(ctx)).
		Logger()

	if err := s.validate(ctx, credentials); err != nil {
		log.Info().Str("outcome", "invalid_request").Msg("login attempt")
		return models.User{}, models.Token{}, err
	}

	user, err := s.findByIdentifier(ctx, credentials.Identifier)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		s.hasher.Verify(credentials.Password, s.getDummyHash(ctx))
		log.Info().Str("outcome", "unknown_identifier").Msg("login attempt")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Str("outcome", "error").Msg("login attempt")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if !s.hasher.Verify(credentials.Password, user.PasswordHash) {
		log.Info().Int64("user_id", user.UserID).Str("outcome", "wrong_password").Msg("login attempt")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		log.Err(err).Str("outcome", "error").Msg("login attempt")
		return models.User{}, models.Token{}, err
	}

	log.Info().Int64("user_id", user.UserID).Str("outcome", "success").Msg("login attempt")
	return user.Sanitized(), token, nil
}

func (s *accountService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("user_id", id).Msg("user lookup failed")
		return models.User{}, mapStoreError(err)
	}

	return user.Sanitized(), nil
}

func (s *accountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, mapStoreError(err)
	}

	sanitized := make([]models.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	return sanitized, nil
}

// UpdateProfile applies the present fields of update to user id. A new
// password is hashed before it reaches the store. An update with no fields
// returns the current record.
func (s *accountService) UpdateProfile(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx).With().Int64("user_id", id).Logger()

	if err := s.validate(ctx, update); err != nil {
		log.Debug().Err(err).Msg("profile update rejected")
		return models.User{}, err
	}

	// the store only ever sees the hash
	update.PasswordHash = nil
	if update.Password != nil {
		hash, err := s.hashPassword(*update.Password)
		if err != nil {
			return models.User{}, err
		}
		update.PasswordHash = &hash
		update.Password = nil
	}

	updated, err := s.userRepository.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Msg("profile update ended with error")
		return models.User{}, mapStoreError(err)
	}

	log.Info().Msg("profile updated")
	return updated.Sanitized(), nil
}

func (s *accountService) SetActive(ctx context.Context, id int64, active bool) (models.User, error) {
	updated, err := s.userRepository.SetActive(ctx, id, active)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", id).Bool("active", active).Msg("set active failed")
		return models.User{}, mapStoreError(err)
	}

	return updated.Sanitized(), nil
}

// findByIdentifier resolves identifier as an e-mail first and as an account
// name second.
func (s *accountService) findByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, identifier)
	if !errors.Is(err, store.ErrUserNotFound) {
		return user, err
	}

	return s.userRepository.FindByName(ctx, identifier)
}

func (s *accountService) validate(ctx context.Context, obj any) error {
	err := s.validator.Validate(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		return &ValidationError{Fields: fieldErrors}
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

func (s *accountService) hashPassword(plaintext string) (string, error) {
	hash, err := s.hasher.Hash(plaintext)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return "", newValidationError("password", fmt.Sprintf("must be at most %d characters", crypto.MaxPasswordLength))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return hash, nil
}

func (s *accountService) getDummyHash(ctx context.Context) string {
	s.dummyHashOnce.Do(func() {
		hash, err := s.hasher.Hash(dummyPassword)
		if err != nil || hash == "" {
			logger.FromContext(ctx).Err(err).Str("func", "accountService.getDummyHash").
				Msg("failed to hash dummy password, using fallback hash")
			hash = fallbackDummyHash
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

// mapStoreError translates store errors into the service taxonomy.
func mapStoreError(err error) error {
	var uniqueErr *store.UniqueViolationError
	switch {
	case errors.As(err, &uniqueErr):
		return &ConflictError{Field: uniqueErr.Field}
	case errors.Is(err, store.ErrUniqueViolation):
		return &ConflictError{}
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
