// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/portobello/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientConfigurationService defines the client-side contract for reading the
// configuration, keeping a local snapshot for when the server is unreachable.
type ClientConfigurationService interface {
	// Fetch downloads the configuration and stores it as the new snapshot.
	// When the server cannot be reached the stored snapshot is returned with
	// Stale set. Without a stored snapshot the transport error is returned.
	Fetch(ctx context.Context) (models.Snapshot, error)

	// Cached returns the stored snapshot without contacting the server.
	// Returns store.ErrSnapshotNotFound when nothing was fetched yet.
	Cached(ctx context.Context) (models.Snapshot, error)
}
