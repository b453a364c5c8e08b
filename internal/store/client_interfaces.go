// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/portobello/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SnapshotRepository keeps the last configuration fetched by the client.
type SnapshotRepository interface {
	// Save replaces the stored snapshot.
	Save(ctx context.Context, entries models.EntrySet, fetchedAt time.Time) error
	// Load returns the stored snapshot or ErrSnapshotNotFound.
	Load(ctx context.Context) (models.Snapshot, error)
}
