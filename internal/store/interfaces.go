// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/portobello/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigurationRepository reads the active (not deactivated) configuration
// rows. Results are ordered by id; entries by key_id then order_index.
type ConfigurationRepository interface {
	ListTypes(ctx context.Context) (models.TypeSet, error)
	ListKeys(ctx context.Context) ([]models.KeyRecord, error)
	// ListEntries returns global rows plus, when userID is not empty, the
	// rows owned by that user.
	ListEntries(ctx context.Context, userID string) ([]models.EntryRecord, error)
}

// ConfigurationWriter inserts configuration rows and returns their ids.
type ConfigurationWriter interface {
	InsertType(ctx context.Context, name models.TypeName, description string) (int64, error)
	InsertKey(ctx context.Context, key models.KeyRecord) (int64, error)
	InsertEntry(ctx context.Context, entry models.EntryRecord) (int64, error)
}

// ConfigurationSeeder runs fn inside one transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
type ConfigurationSeeder interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, w ConfigurationWriter) error) error
}
