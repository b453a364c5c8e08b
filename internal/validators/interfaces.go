// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks configuration models against the rules the
// wire codec deliberately leaves to callers: identifier and name formats,
// agreement between a value and its key's declared type, cardinality of
// single-valued keys, and whether a key may carry a user override.
//
// The codec in package models only guarantees structural shape. Services
// that assemble entries from storage, and clients running in strict mode,
// opt into these checks by calling a Validator explicitly.
package validators

import "context"

// Validator defines a generic validation interface for configuration models.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
