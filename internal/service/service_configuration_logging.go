// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/models"
)

// ConfigurationServiceWrapper defines middleware composition for
// ConfigurationService. Implementations wrap an existing service to add
// behavior such as logging.
type ConfigurationServiceWrapper interface {
	Wrap(ConfigurationService) ConfigurationService
}

// ConfigurationLoggingService logs the duration and size of every call of
// the wrapped ConfigurationService.
type ConfigurationLoggingService struct {
	inner ConfigurationService
}

func NewConfigurationLoggingService() ConfigurationServiceWrapper {
	return &ConfigurationLoggingService{}
}

func (l *ConfigurationLoggingService) ListTypes(ctx context.Context) (models.TypeSet, error) {
	start := time.Now()
	types, err := l.inner.ListTypes(ctx)
	logCall(ctx, "ListTypes", start, len(types), err)
	return types, err
}

func (l *ConfigurationLoggingService) ListKeys(ctx context.Context) (models.KeySet, error) {
	start := time.Now()
	keys, err := l.inner.ListKeys(ctx)
	logCall(ctx, "ListKeys", start, len(keys), err)
	return keys, err
}

func (l *ConfigurationLoggingService) ListEntries(ctx context.Context, userID string) (models.EntrySet, error) {
	start := time.Now()
	entries, err := l.inner.ListEntries(ctx, userID)
	logCall(ctx, "ListEntries", start, len(entries), err)
	return entries, err
}

func (l *ConfigurationLoggingService) Wrap(inner ConfigurationService) ConfigurationService {
	l.inner = inner
	return l
}

func logCall(ctx context.Context, method string, start time.Time, count int, err error) {
	log := logger.FromContext(ctx)
	if err != nil {
		log.Err(err).Str("method", method).Dur("duration", time.Since(start)).Msg("configuration call failed")
		return
	}
	log.Debug().Str("method", method).Dur("duration", time.Since(start)).Int("count", count).Msg("configuration call")
}
