// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/models"
)

// configurationRepository is the PostgreSQL-backed [ConfigurationRepository].
type configurationRepository struct {
	*DB
	logger *logger.Logger
}

// NewConfigurationRepository constructs a [ConfigurationRepository] over db.
func NewConfigurationRepository(db *DB, logger *logger.Logger) ConfigurationRepository {
	logger.Debug().Msg("creating configuration repository")
	return &configurationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *configurationRepository) ListTypes(ctx context.Context) (models.TypeSet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTypesQuery()
	if err != nil {
		log.Err(err).Str("func", "configurationRepository.ListTypes").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.queryContext(ctx, query, args...)
	if err != nil {
		r.logQueryError(ctx, "configurationRepository.ListTypes", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	types := make(models.TypeSet, 0, 8)
	for rows.Next() {
		var t models.Type
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			log.Err(err).Str("func", "configurationRepository.ListTypes").Msg("failed to scan type row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "configurationRepository.ListTypes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return types, nil
}

func (r *configurationRepository) ListKeys(ctx context.Context) ([]models.KeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListKeysQuery()
	if err != nil {
		log.Err(err).Str("func", "configurationRepository.ListKeys").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.queryContext(ctx, query, args...)
	if err != nil {
		r.logQueryError(ctx, "configurationRepository.ListKeys", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]models.KeyRecord, 0, 16)
	for rows.Next() {
		var k models.KeyRecord
		scanErr := rows.Scan(
			&k.ID,
			&k.Name,
			&k.Description,
			&k.TypeID,
			&k.Optional,
			&k.AllowsMultiple,
			&k.AllowsUserOverride,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "configurationRepository.ListKeys").Msg("failed to scan key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		keys = append(keys, k)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "configurationRepository.ListKeys").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (r *configurationRepository) ListEntries(ctx context.Context, userID string) ([]models.EntryRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "configurationRepository.ListEntries").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.queryContext(ctx, query, args...)
	if err != nil {
		r.logQueryError(ctx, "configurationRepository.ListEntries", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.EntryRecord, 0, 32)
	for rows.Next() {
		var (
			e     models.EntryRecord
			owner sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.KeyID, &owner, &e.OrderIndex, &e.Value); err != nil {
			log.Err(err).
				Str("func", "configurationRepository.ListEntries").
				Str("user_id", userID).
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.UserID = owner.String
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "configurationRepository.ListEntries").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	log.Debug().
		Str("func", "configurationRepository.ListEntries").
		Str("user_id", userID).
		Int("rows", len(entries)).
		Msg("loaded configuration entries")

	return entries, nil
}

func (r *configurationRepository) logQueryError(ctx context.Context, fn string, err error) {
	classification := NonRetryable
	if r.errorClassificator != nil {
		classification = r.errorClassificator.Classify(err)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("pg_code", postgresError(err)).
		Stringer("classification", classification).
		Msg("failed to execute query")
}
