// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account record as stored by the user store.
// PasswordHash is the only credential-bearing field and is never serialized.
type User struct {
	// UserID is the store-assigned unique identifier.
	UserID int64 `json:"id"`

	// Name is the unique account name. It can be used as a login identifier.
	Name string `json:"name"`

	// Email is the unique e-mail address. It can be used as a login identifier.
	Email string `json:"email"`

	// Phone is the unique contact phone number.
	Phone string `json:"phone"`

	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`

	// PasswordHash is the opaque bcrypt output. It MUST NOT leave the service
	// layer; use [User.Sanitized] before returning a record to callers.
	PasswordHash string `json:"-"`

	// Active reports whether the account is enabled. New accounts are active
	// unless explicitly registered otherwise.
	Active bool `json:"active"`

	// ImagePath references an asset stored outside of this service.
	ImagePath string `json:"imagePath,omitempty"`

	// RoleID references a [Role]. Nil for accounts without a role.
	RoleID *int64 `json:"roleId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of the user with the password hash cleared.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// UserUpdate describes a partial profile update. A nil field is absent from
// the request and leaves the stored value untouched.
type UserUpdate struct {
	Name      *string `json:"name,omitempty" validate:"omitnil,notblank"`
	Email     *string `json:"email,omitempty" validate:"omitnil,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitnil,notblank"`
	Country   *string `json:"country,omitempty" validate:"omitnil,notblank"`
	State     *string `json:"state,omitempty" validate:"omitnil,notblank"`
	City      *string `json:"city,omitempty" validate:"omitnil,notblank"`
	Password  *string `json:"password,omitempty" validate:"omitnil,min=6,max=72"`
	ImagePath *string `json:"imagePath,omitempty"`
	Active    *bool   `json:"active,omitempty"`

	// PasswordHash is filled by the service after hashing Password and is the
	// only password-related value the store ever receives.
	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil &&
		u.Country == nil && u.State == nil && u.City == nil &&
		u.Password == nil && u.ImagePath == nil && u.Active == nil &&
		u.PasswordHash == nil
}
