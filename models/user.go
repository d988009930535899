// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Role is a named permission group assigned to users.
// Roles are seeded by migrations and are not editable through the API.
type Role string

const (
	// RoleAdmin may create travels and tours and update travels.
	RoleAdmin Role = "admin"

	// RoleEditor may update existing travels.
	RoleEditor Role = "editor"
)

// IsKnown reports whether r is one of the seeded roles.
func (r Role) IsKnown() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User represents an account that can log in and act on admin routes.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	// Roles lists every role assigned to the user via the role_user table.
	Roles []Role `json:"roles,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasAnyRole reports whether the user holds at least one of roles.
// The check is a plain set membership test; roles have no hierarchy.
func (u User) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		if slices.Contains(u.Roles, role) {
			return true
		}
	}
	return false
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
