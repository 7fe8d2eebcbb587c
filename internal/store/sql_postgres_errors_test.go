// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func configFor(dsn string) config.Storage {
	return config.Storage{DB: config.DB{DSN: dsn}}
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
		{"wrapped retryable", fmt.Errorf("outer: %w", pgError(pgerrcode.DeadlockDetected)), Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}

func TestAsUniqueViolation(t *testing.T) {
	uv := asUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "users_phone_key",
	}))
	if assert.NotNil(t, uv) {
		assert.Equal(t, "phone", uv.Field)
	}

	assert.Nil(t, asUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.Nil(t, asUniqueViolation(errors.New("plain")))
}

func TestUniqueViolationError(t *testing.T) {
	err := error(&UniqueViolationError{Field: "email"})
	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.Contains(t, err.Error(), "email")

	assert.Equal(t, ErrUniqueViolation.Error(), (&UniqueViolationError{}).Error())
}
