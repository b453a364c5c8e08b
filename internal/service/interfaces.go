// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/portobello/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConfigurationService assembles the configuration responses from the
// stored rows.
type ConfigurationService interface {
	ListTypes(ctx context.Context) (models.TypeSet, error)
	ListKeys(ctx context.Context) (models.KeySet, error)

	// ListEntries returns one entry per key that has at least one row.
	// An empty userID yields global values only.
	ListEntries(ctx context.Context, userID string) (models.EntrySet, error)
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	Version(ctx context.Context) models.VersionResponse
}

// SeedService inserts the default types, keys and entries.
type SeedService interface {
	SeedDefaults(ctx context.Context) (models.SeedSummary, error)
}
