// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/portobello/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListTypesQuery(t *testing.T) {
	query, args, err := buildListTypesQuery()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t, "SELECT id, name, description FROM configuration_type_reference WHERE deactivate_timestamp IS NULL ORDER BY id", query)
}

func Test_buildListKeysQuery(t *testing.T) {
	query, args, err := buildListKeysQuery()
	require.NoError(t, err)

	assert.Empty(t, args)
	q := strings.ToLower(query)
	for _, c := range []string{"id", "name", "description", "type_id", "optional", "allows_multiple", "allows_user_override"} {
		assert.Contains(t, q, c)
	}
	assert.Contains(t, q, "from configuration_key_reference")
	assert.Contains(t, q, "deactivate_timestamp is null")
	assert.True(t, strings.HasSuffix(q, "order by id"))
}

func Test_buildListEntriesQuery(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		wantWhere  string
		wantArgs   []any
		notContain string
	}{
		{
			name:       "anonymous sees global rows only",
			userID:     "",
			wantWhere:  "WHERE deactivate_timestamp IS NULL AND user_id IS NULL ORDER BY key_id, order_index",
			wantArgs:   nil,
			notContain: "$1",
		},
		{
			name:      "user sees global and own rows",
			userID:    "user-1",
			wantWhere: "WHERE deactivate_timestamp IS NULL AND (user_id IS NULL OR user_id = $1) ORDER BY key_id, order_index",
			wantArgs:  []any{"user-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListEntriesQuery(tt.userID)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "SELECT id, key_id, user_id, order_index, value FROM configuration_entries "), query)
			assert.True(t, strings.HasSuffix(query, tt.wantWhere), query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
			if tt.notContain != "" {
				assert.NotContains(t, query, tt.notContain)
			}
		})
	}
}

func Test_buildInsertQueries(t *testing.T) {
	t.Run("type", func(t *testing.T) {
		query, args, err := buildInsertTypeQuery(models.TypeBoolean, "A true/false value")
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO configuration_type_reference (name,description) VALUES ($1,$2) RETURNING id", query)
		assert.Equal(t, []any{"boolean", "A true/false value"}, args)
	})

	t.Run("key", func(t *testing.T) {
		key := models.KeyRecord{Name: "system.enabled.code", Description: "d", TypeID: 1, AllowsUserOverride: true}
		query, args, err := buildInsertKeyQuery(key)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(query, "INSERT INTO configuration_key_reference "))
		assert.True(t, strings.HasSuffix(query, "RETURNING id"))
		assert.Equal(t, []any{"system.enabled.code", "d", int64(1), false, false, true}, args)
	})

	t.Run("global entry stores NULL user", func(t *testing.T) {
		query, args, err := buildInsertEntryQuery(models.EntryRecord{KeyID: 3, OrderIndex: 1, Value: "true"})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO configuration_entries (key_id,user_id,order_index,value) VALUES ($1,$2,$3,$4) RETURNING id", query)
		require.Len(t, args, 4)
		assert.Nil(t, args[1])
	})

	t.Run("user entry", func(t *testing.T) {
		_, args, err := buildInsertEntryQuery(models.EntryRecord{KeyID: 3, UserID: "user-1", OrderIndex: 1, Value: "false"})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(3), "user-1", 1, "false"}, args)
	})
}
