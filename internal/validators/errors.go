// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidType            = errors.New("invalid configuration type")
	ErrInvalidKey             = errors.New("invalid configuration key")
	ErrValueTypeMismatch      = errors.New("value does not match the key type")
	ErrMissingValue           = errors.New("unset value for a required key")
	ErrTooManyItems           = errors.New("key does not allow multiple values")
	ErrUnexpectedUserOverride = errors.New("key does not allow user override")
	ErrInvalidUserID          = errors.New("invalid user ID")
	ErrDuplicateKey           = errors.New("duplicate key in set")
)
