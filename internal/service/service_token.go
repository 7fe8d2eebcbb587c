package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the concrete implementation of TokenService.
// Tokens are HS256 JWTs; verification is purely cryptographic and touches
// no storage.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time
}

// NewTokenService constructs a TokenService from cfg.
//
// Returns ErrMissingTokenSignKey when cfg carries no signing secret. A zero
// duration or issuer falls back to the config defaults.
func NewTokenService(cfg config.App) (TokenService, error) {
	s, err := newTokenService(cfg, time.Now)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newTokenService(cfg config.App, now func() time.Time) (*tokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrMissingTokenSignKey
	}

	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = config.DefaultTokenIssuer
	}
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = config.DefaultTokenDuration
	}

	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   issuer,
		tokenDuration: duration,
		now:           now,
	}, nil
}

// Issue signs a token for user that expires tokenDuration from now.
func (s *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, user, s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return token, nil
}

// Verify checks the signature, algorithm, issuer and expiry of tokenString
// and returns its claims. Any failure is reported as ErrTokenInvalid,
// wrapping ErrTokenExpired or ErrTokenMalformed.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Claims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, s.now)
	if err != nil {
		cause := ErrTokenMalformed
		if errors.Is(err, jwt.ErrTokenExpired) {
			cause = ErrTokenExpired
		}
		logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, cause)
	}

	return token.Claims, nil
}
