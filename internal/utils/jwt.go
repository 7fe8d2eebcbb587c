package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-accounts/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by ParseBearerToken.
var (
	ErrMissingAuthHeader = errors.New("authorization header is missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//   - userId, name, email
//
// issuer, tokenDuration and signKey are required. Returns an error if any of
// them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", user, time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, user models.User, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method check (HS256 only)
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check against now
//   - Subject (sub) claim agreement with the userId claim
//
// Expiry failures wrap [jwt.ErrTokenExpired] so callers can tell them apart
// with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	if userID != claims.UserID {
		return models.Token{}, errors.New("subject does not match user id claim")
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
// Both "Bearer <token>" (scheme is case-insensitive) and a bare "<token>"
// are accepted. A blank header, or a scheme with no token, returns
// [ErrMissingAuthHeader].
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	switch len(parts) {
	case 0:
		return "", ErrMissingAuthHeader
	case 1:
		if strings.EqualFold(parts[0], models.BearerScheme) {
			return "", ErrMissingAuthHeader
		}
		return parts[0], nil
	case 2:
		if !strings.EqualFold(parts[0], models.BearerScheme) {
			return "", ErrInvalidAuthHeader
		}
		return parts[1], nil
	default:
		return "", ErrInvalidAuthHeader
	}
}
