// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/store"
	"github.com/MKhiriev/portobello/internal/validators"
	"github.com/MKhiriev/portobello/models"
)

// configurationService builds typed responses from the text rows kept by
// a ConfigurationRepository.
type configurationService struct {
	repository store.ConfigurationRepository
	validator  validators.Validator

	logger *logger.Logger
}

// NewConfigurationService returns a ConfigurationService reading through
// repository. Every assembled entry is checked by validator before it is
// returned.
func NewConfigurationService(repository store.ConfigurationRepository, validator validators.Validator, logger *logger.Logger) ConfigurationService {
	return &configurationService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *configurationService) ListTypes(ctx context.Context) (models.TypeSet, error) {
	types, err := s.repository.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing configuration types: %w", err)
	}

	return types, nil
}

// ListKeys resolves the type of every key. A key referencing a type that
// is not active fails with ErrConfigurationTypeNotFound.
func (s *configurationService) ListKeys(ctx context.Context) (models.KeySet, error) {
	types, err := s.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.repository.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing configuration keys: %w", err)
	}

	return resolveKeys(types, records)
}

// ListEntries groups the rows visible to userID by key. Global rows fill
// itemsGlobal and rows owned by the user fill user.items, both in
// order_index order. User rows for keys that do not allow an override are
// dropped.
func (s *configurationService) ListEntries(ctx context.Context, userID string) (models.EntrySet, error) {
	log := logger.FromContext(ctx)

	keys, err := s.ListKeys(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.repository.ListEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing configuration entries: %w", err)
	}

	keysByID := make(map[int64]models.Key, len(keys))
	for _, key := range keys {
		keysByID[key.ID] = key
	}

	grouped := make(map[int64]*models.Entry, len(keys))
	for _, row := range rows {
		key, ok := keysByID[row.KeyID]
		if !ok {
			return nil, fmt.Errorf("%w: id %d for entry %d", ErrConfigurationKeyNotFound, row.KeyID, row.ID)
		}

		if !row.IsGlobal() && !key.AllowsUserOverride {
			log.Warn().
				Int64("entry_id", row.ID).
				Str("key", key.Name).
				Str("user_id", row.UserID).
				Msg("dropping user value of a key that does not allow user override")
			continue
		}

		value, err := parseValue(row.Value, key.Type)
		if err != nil {
			log.Err(err).Int64("entry_id", row.ID).Str("key", key.Name).Msg("stored value could not be parsed")
			return nil, fmt.Errorf("entry %d of key %q: %w", row.ID, key.Name, err)
		}

		entry, ok := grouped[key.ID]
		if !ok {
			entry = &models.Entry{Key: key, ItemsGlobal: models.ItemSet{}}
			grouped[key.ID] = entry
		}

		item := models.Item{ID: row.ID, Value: value}
		if row.IsGlobal() {
			entry.ItemsGlobal = append(entry.ItemsGlobal, item)
			continue
		}

		if entry.User == nil {
			entry.User = &models.EntryUser{UserID: row.UserID, Items: models.ItemSet{}}
		}
		entry.User.Items = append(entry.User.Items, item)
	}

	entries := make(models.EntrySet, 0, len(grouped))
	for _, key := range keys {
		entry, ok := grouped[key.ID]
		if !ok {
			continue
		}

		if err = s.validator.Validate(ctx, *entry); err != nil {
			log.Err(err).Str("key", key.Name).Msg("stored configuration entry failed validation")
			return nil, fmt.Errorf("%w: key %q: %w", ErrInvalidStoredEntry, key.Name, err)
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

func resolveKeys(types models.TypeSet, records []models.KeyRecord) (models.KeySet, error) {
	keys := make(models.KeySet, 0, len(records))
	for _, record := range records {
		typ, ok := types.ByID(record.TypeID)
		if !ok {
			return nil, fmt.Errorf("%w: id %d for key %q", ErrConfigurationTypeNotFound, record.TypeID, record.Name)
		}

		keys = append(keys, models.Key{
			ID:                 record.ID,
			Name:               record.Name,
			Description:        record.Description,
			Type:               typ,
			Optional:           record.Optional,
			AllowsMultiple:     record.AllowsMultiple,
			AllowsUserOverride: record.AllowsUserOverride,
		})
	}

	return keys, nil
}

// parseValue reads the text column of an entry row as the key's type.
// Booleans accept exactly "true" and "false".
func parseValue(text string, typ models.Type) (models.Value, error) {
	switch typ.Name {
	case models.TypeBoolean:
		switch text {
		case "true":
			return models.BooleanValue(true), nil
		case "false":
			return models.BooleanValue(false), nil
		}
		return models.Value{}, fmt.Errorf("%w: %q is not a boolean", ErrParsingValue, text)
	case models.TypeInteger:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return models.Value{}, fmt.Errorf("%w: %w", ErrParsingValue, err)
		}
		return models.IntegerValue(i), nil
	case models.TypeFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return models.Value{}, fmt.Errorf("%w: %w", ErrParsingValue, err)
		}
		return models.FloatValue(f), nil
	case models.TypeString:
		return models.StringValue(text), nil
	}

	return models.Value{}, fmt.Errorf("%w: %q (id %d)", ErrConfigurationTypeNotFound, typ.Name, typ.ID)
}
