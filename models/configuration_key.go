// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Key describes a named, typed configuration slot.
//
// ID is immutable and unique across the configuration. When AllowsMultiple
// is false the associated value set holds at most one item; when
// AllowsUserOverride is false no user may override it.
type Key struct {
	ID                 int64  `json:"id" validate:"min=1"`
	Name               string `json:"name" validate:"required,key_name"`
	Description        string `json:"description" validate:"required"`
	Type               Type   `json:"type"`
	Optional           bool   `json:"optional"`
	AllowsMultiple     bool   `json:"allowsMultiple"`
	AllowsUserOverride bool   `json:"allowsUserOverride"`
}

// UnmarshalJSON requires all seven fields and fails fast on the first
// one that is missing.
func (k *Key) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("ConfigurationKey", data)
	if err != nil {
		return err
	}

	var decoded Key
	steps := []struct {
		field string
		dst   any
	}{
		{"id", &decoded.ID},
		{"name", &decoded.Name},
		{"description", &decoded.Description},
		{"type", &decoded.Type},
		{"optional", &decoded.Optional},
		{"allowsMultiple", &decoded.AllowsMultiple},
		{"allowsUserOverride", &decoded.AllowsUserOverride},
	}
	for _, step := range steps {
		if err = obj.required(step.field, step.dst); err != nil {
			return err
		}
	}

	*k = decoded
	return nil
}

// KeySet is the ordered ConfigurationKeySetResponse array.
type KeySet []Key

// MarshalJSON encodes a nil set as an empty array.
func (s KeySet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Key(s))
}
