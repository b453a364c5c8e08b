// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPayload is returned when a payload is empty, is not valid
	// JSON, or carries a field of the wrong JSON type.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrMissingRequiredField is matched by every [MissingFieldError].
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrAmbiguousValue is returned when a configuration value object has
	// more than one populated scalar field. It wraps ErrMalformedPayload.
	ErrAmbiguousValue = fmt.Errorf("%w: more than one value field is set", ErrMalformedPayload)
)

// MissingFieldError reports a required field that was absent or null
// while decoding an object.
type MissingFieldError struct {
	// Entity is the wire name of the object being decoded, e.g. "ConfigurationKey".
	Entity string
	// Field is the JSON field name, e.g. "allowsMultiple".
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s.%s", ErrMissingRequiredField, e.Entity, e.Field)
}

// Unwrap makes errors.Is(err, ErrMissingRequiredField) hold.
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingRequiredField
}
