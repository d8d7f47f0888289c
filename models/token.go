// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is an opaque bearer credential bound one-to-one with a user.
//
// A token stays valid until its row is deleted; there is no expiry.
type Token struct {
	// Key is the opaque value presented by clients in the
	// "Authorization: Token <key>" header.
	Key string `json:"token"`

	// UserID is the owner of the token.
	UserID int64 `json:"-"`

	// CreatedAt is the moment the token was first issued.
	CreatedAt time.Time `json:"-"`
}

// String returns the token key. It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.Key
}
