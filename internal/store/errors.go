// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Low-level database operation errors. They are wrapped by storage methods
// when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back and no change is announced.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a key/value row fails.
	ErrScanningRow = errors.New("failed to scan storage row")
)

// ErrStorageClosed is returned by operations on a closed storage.
var ErrStorageClosed = errors.New("storage is closed")
