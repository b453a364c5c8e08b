// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/portobello/internal/adapter"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/store"
	"github.com/MKhiriev/portobello/internal/validators"
	"github.com/MKhiriev/portobello/models"
)

type clientConfigurationService struct {
	serverAdapter adapter.ServerAdapter
	snapshots     store.SnapshotRepository

	// validator is nil unless strict validation is enabled.
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewClientConfigurationService wires the client service. A non-nil
// validator turns on strict mode: an entry set that fails validation is
// rejected and not stored.
func NewClientConfigurationService(serverAdapter adapter.ServerAdapter, snapshots store.SnapshotRepository, validator validators.Validator, logger *logger.Logger) ClientConfigurationService {
	return &clientConfigurationService{
		serverAdapter: serverAdapter,
		snapshots:     snapshots,
		validator:     validator,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *clientConfigurationService) Fetch(ctx context.Context) (models.Snapshot, error) {
	entries, err := s.serverAdapter.GetConfiguration(ctx)
	if err != nil {
		if !isTransportFailure(err) {
			return models.Snapshot{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		return s.fallback(ctx, err)
	}

	if s.validator != nil {
		if err = s.validator.Validate(ctx, entries); err != nil {
			s.logger.Err(err).Msg("server returned an invalid entry set")
			return models.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidRemote, err)
		}
	}

	fetchedAt := s.now()
	if err = s.snapshots.Save(ctx, entries, fetchedAt); err != nil {
		s.logger.Err(err).Msg("failed to store configuration snapshot")
	}

	s.logger.Debug().Int("entries", len(entries)).Msg("configuration fetched")
	return models.Snapshot{Entries: entries, FetchedAt: fetchedAt}, nil
}

func (s *clientConfigurationService) Cached(ctx context.Context) (models.Snapshot, error) {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("error loading configuration snapshot: %w", err)
	}

	snapshot.Stale = true
	return snapshot, nil
}

func (s *clientConfigurationService) fallback(ctx context.Context, fetchErr error) (models.Snapshot, error) {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSnapshotNotFound) {
			s.logger.Err(err).Msg("failed to load configuration snapshot")
		}
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrFetchFailed, fetchErr)
	}

	s.logger.Warn().
		Err(fetchErr).
		Time("fetched_at", snapshot.FetchedAt).
		Msg("server unreachable, using stored configuration snapshot")

	snapshot.Stale = true
	return snapshot, nil
}

// isTransportFailure reports errors after which the stored snapshot may be
// served: the server could not be reached or failed on its side.
func isTransportFailure(err error) bool {
	return errors.Is(err, adapter.ErrRequestFailed) ||
		errors.Is(err, adapter.ErrServerInternal) ||
		errors.Is(err, adapter.ErrUnexpectedStatus)
}
