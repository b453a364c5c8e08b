// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/portobello/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants restricting entry validation to a subset of rules.
const (
	// FieldKey validates the entry's key and its type.
	FieldKey = "key"

	// FieldItems validates the global items against the key.
	FieldItems = "items"

	// FieldUser validates the user override against the key.
	FieldUser = "user"
)

var (
	typeNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	keyNamePattern  = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)
)

// ConfigurationValidator implements Validator for types, keys, entries and
// their sets. Struct-level rules live in validate tags on the models and
// are evaluated by go-playground/validator; cross-field rules are checked here.
type ConfigurationValidator struct {
	validate *validator.Validate
}

// NewConfigurationValidator constructs a ConfigurationValidator with the
// type_name and key_name rules registered.
func NewConfigurationValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("type_name", matches(typeNamePattern))
	_ = v.RegisterValidation("key_name", matches(keyNamePattern))

	return &ConfigurationValidator{validate: v}
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Fields apply to entries and entry sets only.
func (v *ConfigurationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Type:
		return v.validateType(value)
	case *models.Type:
		return v.validateType(*value)

	case models.Key:
		return v.validateKey(value)
	case *models.Key:
		return v.validateKey(*value)

	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case models.TypeSet:
		for _, t := range value {
			if err := v.validateType(t); err != nil {
				return err
			}
		}
		return nil

	case models.KeySet:
		seen := make(map[int64]struct{}, len(value))
		for _, k := range value {
			if err := v.validateKey(k); err != nil {
				return err
			}
			if _, ok := seen[k.ID]; ok {
				return fmt.Errorf("%w: key id %d", ErrDuplicateKey, k.ID)
			}
			seen[k.ID] = struct{}{}
		}
		return nil

	case models.EntrySet:
		return v.validateEntrySet(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ConfigurationValidator) validateType(t models.Type) error {
	if err := v.validate.Struct(t); err != nil {
		return translate(ErrInvalidType, err)
	}
	if !t.Name.Known() {
		return fmt.Errorf("%w: unknown type name %q", ErrInvalidType, t.Name)
	}
	return nil
}

func (v *ConfigurationValidator) validateKey(k models.Key) error {
	if err := v.validate.Struct(k); err != nil {
		return translate(ErrInvalidKey, err)
	}
	if err := v.validateType(k.Type); err != nil {
		return fmt.Errorf("%w: key %q: %w", ErrInvalidKey, k.Name, err)
	}
	return nil
}

func (v *ConfigurationValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldItems, FieldUser}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if err := v.validateKey(entry.Key); err != nil {
				return err
			}
		case FieldItems:
			if err := checkItems(entry.Key, entry.ItemsGlobal); err != nil {
				return err
			}
			if !entry.Key.Optional && len(entry.Effective()) == 0 {
				return fmt.Errorf("%w: key %q has no items", ErrMissingValue, entry.Key.Name)
			}
		case FieldUser:
			if entry.User == nil {
				continue
			}
			if !entry.Key.AllowsUserOverride {
				return fmt.Errorf("%w: key %q", ErrUnexpectedUserOverride, entry.Key.Name)
			}
			if entry.User.UserID == "" {
				return fmt.Errorf("%w: key %q", ErrInvalidUserID, entry.Key.Name)
			}
			if err := checkItems(entry.Key, entry.User.Items); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ConfigurationValidator) validateEntrySet(ctx context.Context, set models.EntrySet, fields ...string) error {
	seen := make(map[int64]struct{}, len(set))
	for _, entry := range set {
		if _, ok := seen[entry.Key.ID]; ok {
			return fmt.Errorf("%w: key %q", ErrDuplicateKey, entry.Key.Name)
		}
		seen[entry.Key.ID] = struct{}{}

		if err := v.validateEntry(ctx, entry, fields...); err != nil {
			return err
		}
	}
	return nil
}

// checkItems enforces cardinality and type agreement of items for key.
func checkItems(key models.Key, items models.ItemSet) error {
	if !key.AllowsMultiple && len(items) > 1 {
		return fmt.Errorf("%w: key %q has %d items", ErrTooManyItems, key.Name, len(items))
	}

	want := key.Type.Name.Kind()
	for _, item := range items {
		got := item.Value.Kind()
		if got == models.ValueUnset {
			if key.Optional {
				continue
			}
			return fmt.Errorf("%w: key %q item %d", ErrMissingValue, key.Name, item.ID)
		}
		if got != want {
			return fmt.Errorf("%w: key %q item %d is %s, want %s", ErrValueTypeMismatch, key.Name, item.ID, got, key.Type.Name)
		}
	}
	return nil
}

// translate folds go-playground validation errors into the sentinel.
func translate(sentinel, err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	failed := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		failed = append(failed, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(failed, ", "))
}
