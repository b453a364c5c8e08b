// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind identifies which scalar a [Value] carries.
type ValueKind uint8

const (
	// ValueUnset marks a value with no populated field.
	ValueUnset ValueKind = iota
	ValueBoolean
	ValueInteger
	ValueFloat
	ValueString
)

// String returns the configuration type name matching the kind.
func (k ValueKind) String() string {
	switch k {
	case ValueBoolean:
		return string(TypeBoolean)
	case ValueInteger:
		return string(TypeInteger)
	case ValueFloat:
		return string(TypeFloat)
	case ValueString:
		return string(TypeString)
	default:
		return "unset"
	}
}

// Value is a single stored configuration value.
//
// It is a closed sum over Boolean, Integer, Float, String and Unset.
// The zero Value is Unset. On the wire it degrades to the flat
// ConfigurationValueResponse shape, where every field is emitted and
// the unpopulated ones are null:
//
//	{"asBoolean":null,"asInteger":42,"asFloat":null,"asString":null}
type Value struct {
	kind    ValueKind
	boolean bool
	integer int64
	float   float64
	str     string
}

// BooleanValue returns a Value holding b.
func BooleanValue(b bool) Value {
	return Value{kind: ValueBoolean, boolean: b}
}

// IntegerValue returns a Value holding i.
func IntegerValue(i int64) Value {
	return Value{kind: ValueInteger, integer: i}
}

// FloatValue returns a Value holding f.
func FloatValue(f float64) Value {
	return Value{kind: ValueFloat, float: f}
}

// StringValue returns a Value holding s.
func StringValue(s string) Value {
	return Value{kind: ValueString, str: s}
}

// Kind returns the populated variant.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsUnset reports whether no field is populated.
func (v Value) IsUnset() bool {
	return v.kind == ValueUnset
}

// AsBoolean returns the boolean and true when v is a Boolean.
func (v Value) AsBoolean() (bool, bool) {
	return v.boolean, v.kind == ValueBoolean
}

// AsInteger returns the integer and true when v is an Integer.
func (v Value) AsInteger() (int64, bool) {
	return v.integer, v.kind == ValueInteger
}

// AsFloat returns the float and true when v is a Float.
func (v Value) AsFloat() (float64, bool) {
	return v.float, v.kind == ValueFloat
}

// AsString returns the string and true when v is a String.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == ValueString
}

// String renders the populated scalar for display.
func (v Value) String() string {
	switch v.kind {
	case ValueBoolean:
		return strconv.FormatBool(v.boolean)
	case ValueInteger:
		return strconv.FormatInt(v.integer, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case ValueString:
		return v.str
	default:
		return "<unset>"
	}
}

// valueWire is the flat ConfigurationValueResponse shape.
type valueWire struct {
	AsBoolean *bool    `json:"asBoolean"`
	AsInteger *int64   `json:"asInteger"`
	AsFloat   *float64 `json:"asFloat"`
	AsString  *string  `json:"asString"`
}

// MarshalJSON emits all four fields, unset ones as null.
func (v Value) MarshalJSON() ([]byte, error) {
	var w valueWire
	switch v.kind {
	case ValueBoolean:
		w.AsBoolean = &v.boolean
	case ValueInteger:
		w.AsInteger = &v.integer
	case ValueFloat:
		w.AsFloat = &v.float
	case ValueString:
		w.AsString = &v.str
	}
	return json.Marshal(w)
}

// UnmarshalJSON copies the populated field through. Absent and null fields
// are unset; more than one populated field fails with ErrAmbiguousValue.
func (v *Value) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*v = Value{}
		return nil
	}

	var w valueWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: ConfigurationValue: %v", ErrMalformedPayload, err)
	}

	var decoded Value
	populated := 0
	if w.AsBoolean != nil {
		decoded = BooleanValue(*w.AsBoolean)
		populated++
	}
	if w.AsInteger != nil {
		decoded = IntegerValue(*w.AsInteger)
		populated++
	}
	if w.AsFloat != nil {
		decoded = FloatValue(*w.AsFloat)
		populated++
	}
	if w.AsString != nil {
		decoded = StringValue(*w.AsString)
		populated++
	}
	if populated > 1 {
		return ErrAmbiguousValue
	}

	*v = decoded
	return nil
}
