// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var jsonNull = []byte("null")

// DecodeValue decodes a ConfigurationValueResponse object.
// A top-level JSON null yields (nil, nil).
func DecodeValue(data []byte) (*Value, error) {
	return decode[Value](data)
}

// DecodeType decodes a ConfigurationTypeResponse object.
func DecodeType(data []byte) (*Type, error) {
	return decode[Type](data)
}

// DecodeKey decodes a ConfigurationKeyResponse object. Every field is required.
func DecodeKey(data []byte) (*Key, error) {
	return decode[Key](data)
}

// DecodeEntry decodes a ConfigurationEntryResponse object.
func DecodeEntry(data []byte) (*Entry, error) {
	return decode[Entry](data)
}

// DecodeEntrySet decodes a ConfigurationEntrySetResponse array.
// An empty array yields an empty, non-nil set; a top-level null yields a nil set.
func DecodeEntrySet(data []byte) (EntrySet, error) {
	set, err := decode[EntrySet](data)
	if set == nil {
		return nil, err
	}
	return *set, nil
}

// DecodeKeySet decodes a ConfigurationKeySetResponse array.
func DecodeKeySet(data []byte) (KeySet, error) {
	set, err := decode[KeySet](data)
	if set == nil {
		return nil, err
	}
	return *set, nil
}

// DecodeTypeSet decodes a ConfigurationTypeSetResponse array.
func DecodeTypeSet(data []byte) (TypeSet, error) {
	set, err := decode[TypeSet](data)
	if set == nil {
		return nil, err
	}
	return *set, nil
}

// Encode serializes any configuration model to its wire form.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding payload: %w", err)
	}
	return data, nil
}

func decode[T any](data []byte) (*T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedPayload)
	}
	if bytes.Equal(trimmed, jsonNull) {
		return nil, nil
	}

	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil, wrapDecodeError("", "", err)
	}
	return &v, nil
}

func wrapDecodeError(entity, field string, err error) error {
	if errors.Is(err, ErrMalformedPayload) || errors.Is(err, ErrMissingRequiredField) {
		return err
	}
	if entity == "" {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return fmt.Errorf("%w: %s.%s: %v", ErrMalformedPayload, entity, field, err)
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// object holds the raw members of a JSON object for presence checks.
type object struct {
	entity  string
	members map[string]json.RawMessage
}

func decodeObject(entity string, data []byte) (object, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return object{}, fmt.Errorf("%w: %s: %v", ErrMalformedPayload, entity, err)
	}
	return object{entity: entity, members: members}, nil
}

// required decodes a member that must be present and not null.
func (o object) required(field string, dst any) error {
	raw, ok := o.members[field]
	if !ok || isNull(raw) {
		return &MissingFieldError{Entity: o.entity, Field: field}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return wrapDecodeError(o.entity, field, err)
	}
	return nil
}

// optional decodes a member when present and not null. It reports whether
// dst was written.
func (o object) optional(field string, dst any) (bool, error) {
	raw, ok := o.members[field]
	if !ok || isNull(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, wrapDecodeError(o.entity, field, err)
	}
	return true, nil
}
