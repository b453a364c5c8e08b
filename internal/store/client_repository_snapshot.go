// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/models"
)

// snapshotRepository stores the entry set in its wire form so a snapshot
// decodes through the same codec as a server response.
type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *snapshotRepository) Save(ctx context.Context, entries models.EntrySet, fetchedAt time.Time) error {
	log := logger.FromContext(ctx)

	payload, err := models.Encode(entries)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.Save").Msg("failed to encode snapshot")
		return fmt.Errorf("%w: %w", ErrEncodingSnapshot, err)
	}

	if _, err = s.ExecContext(ctx, saveSnapshot, string(payload), fetchedAt.UTC()); err != nil {
		log.Err(err).Str("func", "snapshotRepository.Save").Msg("failed to save snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "snapshotRepository.Save").
		Int("entries", len(entries)).
		Time("fetched_at", fetchedAt).
		Msg("snapshot saved")

	return nil
}

func (s *snapshotRepository) Load(ctx context.Context) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	var (
		payload   string
		fetchedAt time.Time
	)
	err := s.QueryRowContext(ctx, loadSnapshot).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.Load").Msg("failed to load snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	entries, err := models.DecodeEntrySet([]byte(payload))
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.Load").Msg("stored snapshot is not a valid entry set")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrDecodingSnapshot, err)
	}

	return models.Snapshot{Entries: entries, FetchedAt: fetchedAt}, nil
}
