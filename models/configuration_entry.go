// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Item is one stored value of an entry (ConfigurationEntryItemResponse).
type Item struct {
	ID    int64 `json:"id"`
	Value Value `json:"value"`
}

// UnmarshalJSON requires id and value.
func (i *Item) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("ConfigurationEntryItem", data)
	if err != nil {
		return err
	}

	var decoded Item
	if err = obj.required("id", &decoded.ID); err != nil {
		return err
	}
	if err = obj.required("value", &decoded.Value); err != nil {
		return err
	}

	*i = decoded
	return nil
}

// ItemSet is an ordered ConfigurationEntryItemSetResponse array.
// Order is significant for keys that allow multiple values.
type ItemSet []Item

// MarshalJSON encodes a nil set as an empty array.
func (s ItemSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Item(s))
}

// Values returns the item values in order.
func (s ItemSet) Values() []Value {
	values := make([]Value, 0, len(s))
	for _, item := range s {
		values = append(values, item.Value)
	}
	return values
}

// EntryUser is the override a single user has set for a key
// (ConfigurationEntryUserResponse).
type EntryUser struct {
	UserID string  `json:"userId"`
	Items  ItemSet `json:"items"`
}

// UnmarshalJSON requires userId and items.
func (u *EntryUser) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("ConfigurationEntryUser", data)
	if err != nil {
		return err
	}

	var decoded EntryUser
	if err = obj.required("userId", &decoded.UserID); err != nil {
		return err
	}
	if err = obj.required("items", &decoded.Items); err != nil {
		return err
	}

	*u = decoded
	return nil
}

// Entry associates a key with its global values and, when the key allows
// it and the current principal has set one, a user override.
//
// A nil User is the first-class "no override" state and is always
// serialized as an explicit "user": null.
type Entry struct {
	Key         Key        `json:"key"`
	ItemsGlobal ItemSet    `json:"itemsGlobal"`
	User        *EntryUser `json:"user"`
}

// UnmarshalJSON requires key and itemsGlobal. A missing or null user
// decodes to a nil User.
func (e *Entry) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("ConfigurationEntry", data)
	if err != nil {
		return err
	}

	var decoded Entry
	if err = obj.required("key", &decoded.Key); err != nil {
		return err
	}
	if err = obj.required("itemsGlobal", &decoded.ItemsGlobal); err != nil {
		return err
	}

	var user EntryUser
	ok, err := obj.optional("user", &user)
	if err != nil {
		return err
	}
	if ok {
		decoded.User = &user
	}

	*e = decoded
	return nil
}

// Effective returns the user items when an override is present,
// otherwise the global items.
func (e Entry) Effective() ItemSet {
	if e.User != nil {
		return e.User.Items
	}
	return e.ItemsGlobal
}

// EntrySet is the ordered ConfigurationEntrySetResponse array.
type EntrySet []Entry

// MarshalJSON encodes a nil set as an empty array.
func (s EntrySet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Entry(s))
}

// Find returns the entry for the key with the given name.
func (s EntrySet) Find(keyName string) (Entry, bool) {
	for _, entry := range s {
		if entry.Key.Name == keyName {
			return entry, true
		}
	}
	return Entry{}, false
}
