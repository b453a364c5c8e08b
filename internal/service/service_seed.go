// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/store"
	"github.com/MKhiriev/portobello/models"
)

type seedType struct {
	name        models.TypeName
	description string
}

type seedKey struct {
	name               string
	description        string
	typ                models.TypeName
	optional           bool
	allowsMultiple     bool
	allowsUserOverride bool
	values             []string
}

var defaultTypes = []seedType{
	{name: models.TypeBoolean, description: "A true/false value"},
	{name: models.TypeInteger, description: "A signed integer number"},
	{name: models.TypeFloat, description: "A floating-point number"},
	{name: models.TypeString, description: "A string value"},
}

var defaultKeys = []seedKey{
	systemEnabledKey("code"),
	systemEnabledKey("dashboard"),
	systemEnabledKey("deploy"),
	systemEnabledKey("document"),
	systemEnabledKey("ticket"),
}

func systemEnabledKey(system string) seedKey {
	return seedKey{
		name:        "system.enabled." + system,
		description: fmt.Sprintf("Whether or not the %s system is enabled", system),
		typ:         models.TypeBoolean,
		values:      []string{"true"},
	}
}

type seedService struct {
	seeder store.ConfigurationSeeder

	logger *logger.Logger
}

func NewSeedService(seeder store.ConfigurationSeeder, logger *logger.Logger) SeedService {
	return &seedService{
		seeder: seeder,
		logger: logger,
	}
}

// SeedDefaults inserts the default types, the system.enabled.* keys and one
// global "true" entry per key in a single transaction. Nothing is kept when
// any insert fails, so seeding an already seeded database fails cleanly.
func (s *seedService) SeedDefaults(ctx context.Context) (models.SeedSummary, error) {
	var summary models.SeedSummary

	err := s.seeder.WithinTransaction(ctx, func(ctx context.Context, w store.ConfigurationWriter) error {
		summary = models.SeedSummary{}

		typeIDs := make(map[models.TypeName]int64, len(defaultTypes))
		for _, t := range defaultTypes {
			id, err := w.InsertType(ctx, t.name, t.description)
			if err != nil {
				return fmt.Errorf("inserting type %q: %w", t.name, err)
			}
			typeIDs[t.name] = id
			summary.Types++
		}

		for _, k := range defaultKeys {
			keyID, err := w.InsertKey(ctx, models.KeyRecord{
				Name:               k.name,
				Description:        k.description,
				TypeID:             typeIDs[k.typ],
				Optional:           k.optional,
				AllowsMultiple:     k.allowsMultiple,
				AllowsUserOverride: k.allowsUserOverride,
			})
			if err != nil {
				return fmt.Errorf("inserting key %q: %w", k.name, err)
			}
			summary.Keys++

			for i, value := range k.values {
				_, err = w.InsertEntry(ctx, models.EntryRecord{KeyID: keyID, OrderIndex: i + 1, Value: value})
				if err != nil {
					return fmt.Errorf("inserting entry %d of key %q: %w", i+1, k.name, err)
				}
				summary.Entries++
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Err(err).Msg("seeding failed, transaction rolled back")
		return models.SeedSummary{}, fmt.Errorf("%w: %w", ErrSeedingFailed, err)
	}

	s.logger.Info().
		Int("types", summary.Types).
		Int("keys", summary.Keys).
		Int("entries", summary.Entries).
		Msg("default configuration seeded")

	return summary, nil
}
