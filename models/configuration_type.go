// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// TypeName is the tag identifying the scalar type of a configuration key.
type TypeName string

const (
	TypeBoolean TypeName = "boolean"
	TypeInteger TypeName = "integer"
	TypeFloat   TypeName = "float"
	TypeString  TypeName = "string"
)

// Kind maps the tag to the [Value] variant it requires.
// Unknown tags map to ValueUnset.
func (n TypeName) Kind() ValueKind {
	switch n {
	case TypeBoolean:
		return ValueBoolean
	case TypeInteger:
		return ValueInteger
	case TypeFloat:
		return ValueFloat
	case TypeString:
		return ValueString
	default:
		return ValueUnset
	}
}

// Known reports whether n is one of the four supported tags.
func (n TypeName) Known() bool {
	return n.Kind() != ValueUnset
}

// Type is a row of the configuration type reference, serialized as
// ConfigurationTypeResponse.
type Type struct {
	ID          int64    `json:"id" validate:"min=1"`
	Name        TypeName `json:"name" validate:"required,type_name"`
	Description string   `json:"description" validate:"required"`
}

// UnmarshalJSON requires id, name and description.
func (t *Type) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("ConfigurationType", data)
	if err != nil {
		return err
	}

	var decoded Type
	if err = obj.required("id", &decoded.ID); err != nil {
		return err
	}
	if err = obj.required("name", &decoded.Name); err != nil {
		return err
	}
	if err = obj.required("description", &decoded.Description); err != nil {
		return err
	}

	*t = decoded
	return nil
}

// TypeSet is the ordered ConfigurationTypeSetResponse array.
type TypeSet []Type

// MarshalJSON encodes a nil set as an empty array.
func (s TypeSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Type(s))
}

// ByID returns the type with the given id.
func (s TypeSet) ByID(id int64) (Type, bool) {
	for _, t := range s {
		if t.ID == id {
			return t, true
		}
	}
	return Type{}, false
}
