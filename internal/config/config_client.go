// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	LogLevel         string
	StrictValidation bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the configuration API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	Snapshot Snapshot
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	TokenRefreshInterval time.Duration
	WatchInterval        time.Duration
}

// ClientConfig is the client configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	App      ClientApp
	Adapter  ClientAdapter
	Identity Identity
	Storage  ClientStorage
	Workers  ClientWorkers
}

// Enabled reports whether an identity provider is configured.
func (i Identity) Enabled() bool {
	return i.URL != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel:         cfg.App.LogLevel,
			StrictValidation: cfg.App.StrictValidation,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Identity: cfg.Identity,
		Storage: ClientStorage{
			Snapshot: cfg.Storage.Snapshot,
		},
		Workers: ClientWorkers{
			TokenRefreshInterval: cfg.Workers.TokenRefreshInterval,
			WatchInterval:        cfg.Workers.WatchInterval,
		},
	}
}
