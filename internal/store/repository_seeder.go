// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/models"
	"github.com/jackc/pgerrcode"
)

type configurationSeeder struct {
	*DB
	logger *logger.Logger
}

// NewConfigurationSeeder constructs a [ConfigurationSeeder] over db.
func NewConfigurationSeeder(db *DB, logger *logger.Logger) ConfigurationSeeder {
	return &configurationSeeder{
		DB:     db,
		logger: logger,
	}
}

func (s *configurationSeeder) WithinTransaction(ctx context.Context, fn func(ctx context.Context, w ConfigurationWriter) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "configurationSeeder.WithinTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(ctx, &txWriter{tx: tx}); err != nil {
		log.Err(err).Str("func", "configurationSeeder.WithinTransaction").Msg("rolling back seeding transaction")
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "configurationSeeder.WithinTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// txWriter implements [ConfigurationWriter] on an open transaction.
type txWriter struct {
	tx *sql.Tx
}

func (w *txWriter) InsertType(ctx context.Context, name models.TypeName, description string) (int64, error) {
	query, args, err := buildInsertTypeQuery(name, description)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return w.insert(ctx, "txWriter.InsertType", query, args)
}

func (w *txWriter) InsertKey(ctx context.Context, key models.KeyRecord) (int64, error) {
	query, args, err := buildInsertKeyQuery(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return w.insert(ctx, "txWriter.InsertKey", query, args)
}

func (w *txWriter) InsertEntry(ctx context.Context, entry models.EntryRecord) (int64, error) {
	query, args, err := buildInsertEntryQuery(entry)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return w.insert(ctx, "txWriter.InsertEntry", query, args)
}

func (w *txWriter) insert(ctx context.Context, fn, query string, args []any) (int64, error) {
	var id int64
	if err := w.tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to insert configuration row")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return 0, fmt.Errorf("%w: %w", ErrDuplicateName, err)
		case pgerrcode.ForeignKeyViolation:
			return 0, fmt.Errorf("%w: %w", ErrUnknownReference, err)
		default:
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return id, nil
}
