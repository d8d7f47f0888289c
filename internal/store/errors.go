// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrTokenNotFound is returned when no auth token matches the supplied
	// key.
	ErrTokenNotFound = errors.New("auth token was not found")

	// ErrRecipeNotFound is returned when a recipe does not exist or is owned
	// by another user.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrForeignReference is returned when a recipe references a tag or an
	// ingredient that does not exist or is owned by another user.
	ErrForeignReference = errors.New("referenced object does not exist")

	// ErrUnknownTag and ErrUnknownIngredient narrow [ErrForeignReference]
	// down to the offending table.
	ErrUnknownTag        = fmt.Errorf("%w: tag", ErrForeignReference)
	ErrUnknownIngredient = fmt.Errorf("%w: ingredient", ErrForeignReference)

	// ErrUnsupportedDriver is returned for an unknown database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrDatabaseUnavailable is returned when the database did not accept
	// connections before the startup wait timed out.
	ErrDatabaseUnavailable = errors.New("database is unavailable")

	// ErrInvalidImageKey is returned when an image key escapes the storage
	// root.
	ErrInvalidImageKey = errors.New("invalid image key")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
