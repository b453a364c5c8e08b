// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"version": "1.0.0",
			"strict_validation": true
		},
		"server": {
			"http_address": "localhost:9000",
			"request_timeout": "30s",
			"shutdown_timeout": 1000000000
		},
		"adapter": {
			"http_address": "http://localhost:9000/api",
			"request_timeout": "5s"
		},
		"identity": {
			"url": "http://localhost:9003",
			"realm": "portobello",
			"client_id": "portobello",
			"username": "admin",
			"min_validity": "70s"
		},
		"workers": {
			"token_refresh_interval": "6s",
			"watch_interval": null
		},
		"storage": {
			"db": { "host": "localhost", "port": 5432, "user": "u", "password": "p", "name": "portobello_unit" },
			"snapshot": { "dsn": "/tmp/snapshot.db" }
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.True(t, cfg.App.StrictValidation)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "http://localhost:9000/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "http://localhost:9003", cfg.Identity.URL)
	assert.Equal(t, 70*time.Second, cfg.Identity.MinValidity)

	assert.Equal(t, 6*time.Second, cfg.Workers.TokenRefreshInterval)
	assert.Zero(t, cfg.Workers.WatchInterval)

	assert.Equal(t, "portobello_unit", cfg.Storage.DB.Name)
	assert.Equal(t, "postgres://u:p@localhost:5432/portobello_unit?sslmode=disable", cfg.Storage.DB.ConnectionString())
	assert.Equal(t, "/tmp/snapshot.db", cfg.Storage.Snapshot.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server":{"request_timeout":"soon"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var d Duration
	require.NoError(t, json.Unmarshal(data, &d))
	assert.Equal(t, Duration(90*time.Second), d)
}

func TestDuration_RejectsBool(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
