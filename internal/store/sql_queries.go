// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/portobello/models"
)

const (
	typeTable  = "configuration_type_reference"
	keyTable   = "configuration_key_reference"
	entryTable = "configuration_entries"

	deactivateTimestamp = "deactivate_timestamp"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var active = sq.Eq{deactivateTimestamp: nil}

func buildListTypesQuery() (string, []any, error) {
	return psql.
		Select("id", "name", "description").
		From(typeTable).
		Where(active).
		OrderBy("id").
		ToSql()
}

func buildListKeysQuery() (string, []any, error) {
	return psql.
		Select("id", "name", "description", "type_id", "optional", "allows_multiple", "allows_user_override").
		From(keyTable).
		Where(active).
		OrderBy("id").
		ToSql()
}

// buildListEntriesQuery selects global rows, and the caller's own rows when
// userID is set.
func buildListEntriesQuery(userID string) (string, []any, error) {
	query := psql.
		Select("id", "key_id", "user_id", "order_index", "value").
		From(entryTable).
		Where(active)

	if userID == "" {
		query = query.Where(sq.Eq{"user_id": nil})
	} else {
		query = query.Where(sq.Or{sq.Eq{"user_id": nil}, sq.Eq{"user_id": userID}})
	}

	return query.OrderBy("key_id", "order_index").ToSql()
}

func buildInsertTypeQuery(name models.TypeName, description string) (string, []any, error) {
	return psql.
		Insert(typeTable).
		Columns("name", "description").
		Values(string(name), description).
		Suffix("RETURNING id").
		ToSql()
}

func buildInsertKeyQuery(key models.KeyRecord) (string, []any, error) {
	return psql.
		Insert(keyTable).
		Columns("name", "description", "type_id", "optional", "allows_multiple", "allows_user_override").
		Values(key.Name, key.Description, key.TypeID, key.Optional, key.AllowsMultiple, key.AllowsUserOverride).
		Suffix("RETURNING id").
		ToSql()
}

func buildInsertEntryQuery(entry models.EntryRecord) (string, []any, error) {
	var userID any
	if !entry.IsGlobal() {
		userID = entry.UserID
	}

	return psql.
		Insert(entryTable).
		Columns("key_id", "user_id", "order_index", "value").
		Values(entry.KeyID, userID, entry.OrderIndex, entry.Value).
		Suffix("RETURNING id").
		ToSql()
}
