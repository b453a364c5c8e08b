// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/store"
	"github.com/MKhiriev/portobello/internal/validators"
	"github.com/MKhiriev/portobello/models"
)

// Services groups the server-side services used by the HTTP handler.
// AuthService is nil when no token sign key is configured and every
// request is then served anonymously.
type Services struct {
	AuthService          AuthService
	ConfigurationService ConfigurationService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	configurationService := NewConfigurationService(storages.ConfigurationRepository, validators.NewConfigurationValidator(), logger)

	services := &Services{
		ConfigurationService: NewConfigurationLoggingService().Wrap(configurationService),
		AppInfoService:       NewAppInfoService(cfg.App, buildInfo, logger),
	}
	if cfg.App.TokenSignKey != "" {
		services.AuthService = NewAuthService(cfg.App, logger)
	}

	return services
}
