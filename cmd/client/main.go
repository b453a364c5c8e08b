// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/portobello/internal/adapter"
	"github.com/MKhiriev/portobello/internal/client"
	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/identity"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/service"
	"github.com/MKhiriev/portobello/internal/store"
	"github.com/MKhiriev/portobello/internal/workers"
	"github.com/MKhiriev/portobello/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Fprintln(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("portobello-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Error().Err(err).Msg("invalid log level")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	background := workers.New()
	tokens := adapter.Anonymous
	if cfg.Identity.Enabled() {
		identityClient, err := identity.NewKeycloakClient(cfg.Identity, cfg.Adapter.RequestTimeout, log)
		if err != nil {
			log.Error().Err(err).Msg("create identity client")
			return 1
		}
		if err = identityClient.Init(ctx); err != nil {
			log.Error().Err(err).Msg("identity login failed")
			return 1
		}

		tokens = identityClient
		background.Add(identity.NewTokenRefresher(identityClient, cfg.Workers.TokenRefreshInterval, cfg.Identity.MinValidity, log))
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, tokens, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return 1
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		return 1
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, cfg.App, log)

	app, err := client.NewApp(services, background, cfg.Workers, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx); err != nil {
		return 1
	}
	return 0
}
