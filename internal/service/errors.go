// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers unknown emails, wrong or unusable
	// passwords and inactive accounts alike.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")

	ErrInvalidToken = errors.New("invalid token")
	ErrUserInactive = errors.New("user inactive or deleted")

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrDatabaseUnavailable = errors.New("database is unavailable")
)
