// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// UnusablePasswordPrefix marks a stored password value that can never be
// matched by any plaintext. Users created without a password carry such a
// value instead of a real hash.
const UnusablePasswordPrefix = "!"

// Permissions is the permission capability of a user account.
// It is composed into [User] as a value rather than mixed into its identity.
type Permissions struct {
	// IsActive reports whether the account may authenticate at all.
	IsActive bool `json:"-"`

	// IsStaff reports whether the account may use administrative tooling.
	IsStaff bool `json:"-"`

	// IsSuperuser reports whether the account implicitly holds every
	// permission.
	IsSuperuser bool `json:"-"`
}

// DefaultPermissions returns the permission set of a self-registered user:
// active, neither staff nor superuser.
func DefaultPermissions() Permissions {
	return Permissions{IsActive: true}
}

// SuperuserPermissions returns the permission set granted by elevated
// creation: active, staff and superuser.
func SuperuserPermissions() Permissions {
	return Permissions{IsActive: true, IsStaff: true, IsSuperuser: true}
}

// User is an account identified by its email address. There is no separate
// username.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique, normalized login identifier.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the salted one-way hash of the password, or a value
	// starting with [UnusablePasswordPrefix]. It is never serialized.
	PasswordHash string `json:"-"`

	Permissions

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// HasUsablePassword reports whether a real password hash is stored for u.
func (u User) HasUsablePassword() bool {
	return u.PasswordHash != "" && !strings.HasPrefix(u.PasswordHash, UnusablePasswordPrefix)
}

// Profile returns the public representation of u.
func (u User) Profile() UserResponse {
	return UserResponse{Email: u.Email, Name: u.Name}
}

// CreateUserParams holds the explicit inputs for creating a user account.
type CreateUserParams struct {
	// Email is required; it is normalized before persisting.
	Email string

	// Password is optional. A nil Password creates an account without a
	// usable credential, which is distinct from an empty-string password.
	Password *string

	// Name is the display name.
	Name string

	// Permissions overrides [DefaultPermissions] when non-nil.
	Permissions *Permissions
}

// UserUpdate is a partial update of a user account. Nil fields are left
// untouched.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// IsEmpty reports whether the update carries no changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Password == nil
}

// UserPatch is the storage-level form of [UserUpdate]: the password has
// already been hashed. Nil fields are left untouched.
type UserPatch struct {
	Name         *string
	PasswordHash *string
}

// IsEmpty reports whether the patch carries no changes.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.PasswordHash == nil
}
