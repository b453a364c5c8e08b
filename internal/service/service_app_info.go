// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/models"
)

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports the build metadata of the binary. A version set
// in cfg replaces the one embedded at build time.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := buildInfo.Response()
	if cfg.Version != "" {
		version.Version = cfg.Version
	}

	return &appInfoService{
		version: version,
		logger:  logger,
	}
}

func (s *appInfoService) Version(ctx context.Context) models.VersionResponse {
	return s.version
}
