// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command seed applies the migrations and inserts the default configuration
// types and system keys.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/service"
	"github.com/MKhiriev/portobello/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewLogger("portobello-seed")
	cfg, err := config.GetStorageConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Error().Err(err).Msg("invalid log level")
		return 1
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		return 1
	}
	defer storages.Close()

	summary, err := service.NewSeedService(storages.ConfigurationSeeder, log).SeedDefaults(ctx)
	if err != nil {
		log.Error().Err(err).Msg("seeding failed")
		return 1
	}

	fmt.Printf("Seeded %d types, %d keys, %d entries\n", summary.Types, summary.Keys, summary.Entries)
	return 0
}
