// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultServerAddress        = "localhost:9000"
	DefaultAdapterAddress       = "http://localhost:9000"
	DefaultRequestTimeout       = 10 * time.Second
	DefaultShutdownTimeout      = 5 * time.Second
	DefaultTokenRefreshInterval = 6 * time.Second
	DefaultTokenMinValidity     = 70 * time.Second
	DefaultDBPort               = 5432
	DefaultDBName               = "portobello_dev"
	DefaultRealm                = "portobello"
	DefaultClientID             = "portobello"
	DefaultSnapshotDSN          = "portobello-snapshot.db"
)

// applyDefaults fills fields no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.Server.HTTPAddress, DefaultServerAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)

	setDefault(&cfg.Adapter.HTTPAddress, DefaultAdapterAddress)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultRequestTimeout)

	setDefault(&cfg.Storage.DB.Port, DefaultDBPort)
	setDefault(&cfg.Storage.DB.Name, DefaultDBName)
	setDefault(&cfg.Storage.Snapshot.DSN, DefaultSnapshotDSN)

	setDefault(&cfg.Identity.Realm, DefaultRealm)
	setDefault(&cfg.Identity.ClientID, DefaultClientID)
	setDefault(&cfg.Identity.MinValidity, DefaultTokenMinValidity)

	setDefault(&cfg.Workers.TokenRefreshInterval, DefaultTokenRefreshInterval)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
