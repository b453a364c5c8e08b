// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// KeyRecord is a configuration_key_reference row. TypeID is resolved into a
// [Type] by the configuration service.
type KeyRecord struct {
	ID                 int64
	Name               string
	Description        string
	TypeID             int64
	Optional           bool
	AllowsMultiple     bool
	AllowsUserOverride bool
}

// EntryRecord is a configuration_entries row. Value holds the text form
// ("true", "42", "1.5", "hello") parsed by the key's type name. UserID is
// empty for global rows.
type EntryRecord struct {
	ID         int64
	KeyID      int64
	UserID     string
	OrderIndex int
	Value      string
}

// IsGlobal reports whether the row applies to every user.
func (r EntryRecord) IsGlobal() bool {
	return r.UserID == ""
}

// Snapshot is the last entry set fetched by the client.
type Snapshot struct {
	Entries   EntrySet
	FetchedAt time.Time

	// Stale is set when the snapshot was served because the server could
	// not be reached.
	Stale bool
}

// SeedSummary counts the rows inserted by a seeding run.
type SeedSummary struct {
	Types   int
	Keys    int
	Entries int
}
