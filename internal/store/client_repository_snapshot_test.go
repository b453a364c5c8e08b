// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntrySet() models.EntrySet {
	key := models.Key{
		ID:                 1,
		Name:               "system.enabled.code",
		Description:        "Whether or not the code system is enabled",
		Type:               models.Type{ID: 1, Name: models.TypeBoolean, Description: "A true/false value"},
		AllowsUserOverride: true,
	}
	return models.EntrySet{
		{
			Key:         key,
			ItemsGlobal: models.ItemSet{{ID: 1, Value: models.BooleanValue(true)}},
			User:        &models.EntryUser{UserID: "user-1", Items: models.ItemSet{{ID: 2, Value: models.BooleanValue(false)}}},
		},
	}
}

func newSnapshotStorages(t *testing.T, dsn string) *ClientStorages {
	t.Helper()
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{Snapshot: config.Snapshot{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

func TestSnapshot_LoadEmpty(t *testing.T) {
	storages := newSnapshotStorages(t, ":memory:")

	_, err := storages.SnapshotRepository.Load(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSnapshot_SaveLoad(t *testing.T) {
	storages := newSnapshotStorages(t, ":memory:")
	ctx := context.Background()

	fetchedAt := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, storages.SnapshotRepository.Save(ctx, sampleEntrySet(), fetchedAt))

	snapshot, err := storages.SnapshotRepository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntrySet(), snapshot.Entries)
	assert.True(t, fetchedAt.Equal(snapshot.FetchedAt))
	assert.False(t, snapshot.Stale)
}

func TestSnapshot_SaveReplaces(t *testing.T) {
	storages := newSnapshotStorages(t, ":memory:")
	ctx := context.Background()

	require.NoError(t, storages.SnapshotRepository.Save(ctx, sampleEntrySet(), time.Now()))
	require.NoError(t, storages.SnapshotRepository.Save(ctx, models.EntrySet{}, time.Now()))

	snapshot, err := storages.SnapshotRepository.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, snapshot.Entries)
	assert.Empty(t, snapshot.Entries)
}

func TestSnapshot_PersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshot.db")
	ctx := context.Background()

	first, err := NewClientStorages(ctx, config.ClientStorage{Snapshot: config.Snapshot{DSN: path}}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SnapshotRepository.Save(ctx, sampleEntrySet(), time.Now()))
	require.NoError(t, first.Close())

	second := newSnapshotStorages(t, path)
	snapshot, err := second.SnapshotRepository.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.Entries, 1)
}

func TestSnapshot_CorruptPayload(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewSnapshotRepository(&DB{DB: conn}, logger.Nop())
	mock.ExpectQuery("SELECT payload, fetched_at").
		WillReturnRows(sqlmock.NewRows([]string{"payload", "fetched_at"}).AddRow(`{"not":"a set"}`, time.Now()))

	_, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrDecodingSnapshot)
}
