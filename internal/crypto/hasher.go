// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing primitives of the account
// service.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when none, or an invalid one, is
// configured.
const DefaultCost = 10

// MaxPasswordLength is the longest plaintext bcrypt can hash.
const MaxPasswordLength = 72

// ErrPasswordTooLong is returned by Hash for plaintexts longer than
// [MaxPasswordLength] bytes.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a bcrypt-backed [PasswordHasher]. A cost
// outside bcrypt.MinCost..bcrypt.MaxCost is replaced with [DefaultCost].
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. bcrypt draws a fresh 16-byte salt for
// every call.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher] using bcrypt's constant-time compare.
func (h *bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Cost returns the bcrypt cost new hashes are produced with.
func (h *bcryptHasher) Cost() int {
	return h.cost
}
