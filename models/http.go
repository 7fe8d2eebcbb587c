// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// RegisterRequest is the payload of POST /users/create.
//
// Validation rules are expressed as go-playground/validator tags and are
// enforced by the validators package, not by JSON decoding.
type RegisterRequest struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"notblank"`
	Country  string `json:"country" validate:"notblank"`
	State    string `json:"state" validate:"notblank"`
	City     string `json:"city" validate:"notblank"`
	Password string `json:"password" validate:"min=6,max=72"`

	// Active is optional; absent means the account is created active.
	Active *OptionalBool `json:"active,omitempty"`

	// ImagePath is an optional reference to an already stored asset.
	ImagePath string `json:"imagePath,omitempty"`
}

// Credentials is the payload of POST /users/login. Identifier may hold either
// an e-mail address or an account name.
type Credentials struct {
	Identifier string `json:"identifier" validate:"notblank"`
	Password   string `json:"password" validate:"required"`
}

// UnmarshalJSON accepts the legacy "emailOrName" key as an alias of
// "identifier".
func (c *Credentials) UnmarshalJSON(b []byte) error {
	var raw struct {
		Identifier  string `json:"identifier"`
		EmailOrName string `json:"emailOrName"`
		Password    string `json:"password"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	c.Identifier = raw.Identifier
	if c.Identifier == "" {
		c.Identifier = raw.EmailOrName
	}
	c.Password = raw.Password

	return nil
}

// LoginResponse is returned by a successful login. Token always carries the
// canonical "Bearer <jwt>" form.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// SetActiveRequest is the payload of PATCH /users/{id}/active. Active is a
// pointer so that a missing field can be told apart from false.
type SetActiveRequest struct {
	Active *bool `json:"active"`
}

// ErrorResponse is the single-message error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// ValidationErrorResponse is the field-keyed error body returned for
// invalid input.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// OptionalBool decodes from a JSON boolean or from the strings "true" and
// "false", which is what form-style clients send.
type OptionalBool bool

func (b *OptionalBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case bool:
		*b = OptionalBool(value)
		return nil
	case string:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		*b = OptionalBool(parsed)
		return nil
	default:
		return fmt.Errorf("invalid boolean value: %s", string(data))
	}
}

// Bool returns the value, or def when b is nil.
func (b *OptionalBool) Bool(def bool) bool {
	if b == nil {
		return def
	}
	return bool(*b)
}
