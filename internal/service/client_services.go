// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/portobello/internal/adapter"
	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/store"
	"github.com/MKhiriev/portobello/internal/validators"
)

type ClientServices struct {
	ConfigurationService ClientConfigurationService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	var validator validators.Validator
	if cfg.StrictValidation {
		validator = validators.NewConfigurationValidator()
	}

	return &ClientServices{
		ConfigurationService: NewClientConfigurationService(serverAdapter, storages.SnapshotRepository, validator, logger),
	}
}
