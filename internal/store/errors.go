// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrEmailAlreadyExists is returned when registration fails because
	// an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at
	// least one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrItemNotFound is returned when a query or update targets a vault
	// record (identified by id and user_id) that does not exist.
	ErrItemNotFound = errors.New("vault item was not found")

	// ErrItemNotSaved is returned when an INSERT completes without error
	// but the number of affected rows is zero.
	ErrItemNotSaved = errors.New("vault item was not saved")
)

// Low-level database operation errors, returned or wrapped by repository
// methods when a SQL-level operation fails before any domain logic can
// be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver
	// cannot start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at
	// this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan vault item row")
)
