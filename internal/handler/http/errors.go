// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request input. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidUserID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrMissingActiveFlag is returned when the activation payload has no
	// "active" field.
	ErrMissingActiveFlag = errors.New("missing `active` flag")
)
