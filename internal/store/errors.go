// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrSnapshotNotFound is returned by [SnapshotRepository.Load] before
	// the first successful fetch.
	ErrSnapshotNotFound = errors.New("configuration snapshot not found")

	// ErrDuplicateName is returned when a type or key name is already taken.
	ErrDuplicateName = errors.New("configuration name already exists")

	// ErrUnknownReference is returned when an inserted row points at a
	// missing type or key.
	ErrUnknownReference = errors.New("referenced configuration row does not exist")
)

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan configuration row")
	ErrScanningRows         = errors.New("failed to scan configuration rows")
	ErrEncodingSnapshot     = errors.New("failed to encode configuration snapshot")
	ErrDecodingSnapshot     = errors.New("failed to decode configuration snapshot")
)
