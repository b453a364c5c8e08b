// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/portobello/internal/logger"
)

// defaultRetryDelays are the pauses between attempts of a retryable read.
var defaultRetryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}

// DB wraps a *sql.DB with the error classifier used to retry transient
// failures.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	retryDelays        []time.Duration
	migrate            func(*sql.DB) error
}

// Migrate applies the embedded migrations for this database.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return nil
	}
	return db.migrate(db.DB)
}

// queryContext runs a read query, retrying while the classifier reports the
// failure as [Retryable].
func (db *DB) queryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	for attempt := 0; err != nil && attempt < len(db.retryDelays); attempt++ {
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return nil, err
		}

		log.Warn().Err(err).
			Int("attempt", attempt+1).
			Dur("delay", db.retryDelays[attempt]).
			Msg("retrying query after transient error")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(db.retryDelays[attempt]):
		}

		rows, err = db.QueryContext(ctx, query, args...)
	}

	return rows, err
}
