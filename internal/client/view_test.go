// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/portobello/models"
	"github.com/stretchr/testify/assert"
)

var (
	booleanType = models.Type{ID: 1, Name: models.TypeBoolean, Description: "A true/false value"}
	integerType = models.Type{ID: 2, Name: models.TypeInteger, Description: "A signed integer number"}
)

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Entries: models.EntrySet{
			{
				Key: models.Key{
					ID: 1, Name: "system.enabled.code", Description: "code", Type: booleanType,
					AllowsUserOverride: true,
				},
				ItemsGlobal: models.ItemSet{{ID: 1, Value: models.BooleanValue(true)}},
				User: &models.EntryUser{
					UserID: "user-1",
					Items:  models.ItemSet{{ID: 7, Value: models.BooleanValue(false)}},
				},
			},
			{
				Key: models.Key{
					ID: 2, Name: "limits.ports", Description: "ports", Type: integerType,
					AllowsMultiple: true, Optional: true,
				},
				ItemsGlobal: models.ItemSet{
					{ID: 2, Value: models.IntegerValue(8080)},
					{ID: 3, Value: models.IntegerValue(9090)},
				},
			},
		},
		FetchedAt: time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestRenderSnapshot(t *testing.T) {
	out := RenderSnapshot(testSnapshot())

	for _, want := range []string{
		"KEY", "TYPE", "GLOBAL", "USER",
		"system.enabled.code", "boolean", "true", "false",
		"limits.ports", "integer[]?", "8080, 9090",
		"2 entries, fetched at",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "server unreachable")

	lines := strings.Split(out, "\n")
	var portsLine string
	for _, line := range lines {
		if strings.Contains(line, "limits.ports") {
			portsLine = line
		}
	}
	assert.Contains(t, portsLine, emptyCell, "entry without overrides shows an empty user cell")
}

func TestRenderSnapshot_Stale(t *testing.T) {
	s := testSnapshot()
	s.Stale = true

	out := RenderSnapshot(s)

	assert.True(t, strings.HasPrefix(out, "server unreachable"))
}

func TestRenderSnapshot_Empty(t *testing.T) {
	out := RenderSnapshot(models.Snapshot{Entries: models.EntrySet{}})

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "0 entries")
	assert.NotContains(t, out, "fetched at")
}

func TestFormatItems(t *testing.T) {
	tests := []struct {
		name  string
		items models.ItemSet
		want  string
	}{
		{name: "nil", items: nil, want: emptyCell},
		{name: "empty", items: models.ItemSet{}, want: emptyCell},
		{name: "single", items: models.ItemSet{{ID: 1, Value: models.StringValue("eu-west")}}, want: "eu-west"},
		{name: "unset", items: models.ItemSet{{ID: 1}}, want: "<unset>"},
		{
			name:  "order kept",
			items: models.ItemSet{{ID: 2, Value: models.FloatValue(0.5)}, {ID: 1, Value: models.FloatValue(1.25)}},
			want:  "0.5, 1.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatItems(tt.items))
		})
	}
}

func TestTypeCell(t *testing.T) {
	assert.Equal(t, "boolean", typeCell(models.Key{Type: booleanType}))
	assert.Equal(t, "integer[]", typeCell(models.Key{Type: integerType, AllowsMultiple: true}))
	assert.Equal(t, "boolean?", typeCell(models.Key{Type: booleanType, Optional: true}))
}

func TestPluralEntries(t *testing.T) {
	assert.Equal(t, "0 entries", pluralEntries(0))
	assert.Equal(t, "1 entry", pluralEntries(1))
	assert.Equal(t, "12 entries", pluralEntries(12))
}
