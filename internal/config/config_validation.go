// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// validate checks the settings the HTTP server cannot start without.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.DB.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	return nil
}

func (db DB) validate() error {
	if db.ConnectionString() == "" {
		return fmt.Errorf("%w: database DSN or host is required", ErrInvalidStorageConfigs)
	}
	return nil
}

// ConnectionString returns DSN when set, otherwise a postgres:// URL built
// from Host, Port, User, Password and Name. It is empty when neither DSN
// nor Host is set.
func (db DB) ConnectionString() string {
	if db.DSN != "" {
		return db.DSN
	}
	if db.Host == "" {
		return ""
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:     "/" + db.Name,
		RawQuery: "sslmode=disable",
	}
	if db.User != "" {
		u.User = url.UserPassword(db.User, db.Password)
	}
	return u.String()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Snapshot.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Identity.Enabled() {
		if cfg.Identity.Realm == "" || cfg.Identity.ClientID == "" || cfg.Identity.Username == "" {
			return ErrInvalidIdentityConfigs
		}
		if cfg.Workers.TokenRefreshInterval <= 0 || cfg.Identity.MinValidity <= 0 {
			return ErrInvalidWorkerConfigs
		}
	}

	if cfg.Workers.WatchInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
