// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// withArgs resets the global flag set and simulates a command line.
func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs, oldFlags := os.Args, flag.CommandLine
	flag.CommandLine = flag.NewFlagSet("cmd", flag.ContinueOnError)
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldFlags
	})
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── merge / build ─────────────────────────────────────────────────────────────

// TestMerge_EmptyBuilder verifies that merging no configs yields a zero config.
func TestMerge_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().merge()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies mergo keeps the earliest non-zero value
// and fills the rest from later sources.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "env"}},
		&StructuredConfig{App: App{Version: "flags", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_AppliesDefaults verifies that unset fields receive defaults and
// set fields are left alone.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{HTTPAddress: ":8080"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultTokenRefreshInterval, cfg.Workers.TokenRefreshInterval)
	assert.Equal(t, DefaultTokenMinValidity, cfg.Identity.MinValidity)
	assert.Equal(t, DefaultRealm, cfg.Identity.Realm)
	assert.Equal(t, DefaultDBPort, cfg.Storage.DB.Port)
	assert.Equal(t, DefaultDBName, cfg.Storage.DB.Name)
	assert.Equal(t, DefaultSnapshotDSN, cfg.Storage.Snapshot.DSN)
	assert.Zero(t, cfg.Workers.WatchInterval)
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that env vars are parsed into the
// appended config.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("IDENTITY_URL", "http://localhost:9003")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "http://localhost:9003", b.configs[0].Identity.URL)
}

// TestWithEnv_InvalidDuration verifies that a bad duration sets b.err.
func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithFlags_AppendsConfig verifies that parsed flags are appended.
func TestWithFlags_AppendsConfig(t *testing.T) {
	withArgs(t, "-a", "localhost:9100")

	b := newConfigBuilder().withFlags()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9100", b.configs[0].Server.HTTPAddress)
}

// TestWithFlags_InvalidAddress verifies that a bad -a value sets b.err.
func TestWithFlags_InvalidAddress(t *testing.T) {
	withArgs(t, "-a", "invalid")

	b := newConfigBuilder().withFlags()
	assert.Error(t, b.err)
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that nothing is appended without a path.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	payload.Workers.WatchInterval = Duration(30 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
	assert.Equal(t, 30*time.Second, b.configs[2].Workers.WatchInterval)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── entry points ──────────────────────────────────────────────────────────────

// TestGetStructuredConfig_FromEnv loads a valid server configuration.
func TestGetStructuredConfig_FromEnv(t *testing.T) {
	withArgs(t)
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/portobello_unit")
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/portobello_unit", cfg.Storage.DB.ConnectionString())
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
}

// TestGetStructuredConfig_EnvBeatsFlags verifies source priority.
func TestGetStructuredConfig_EnvBeatsFlags(t *testing.T) {
	withArgs(t, "-token-sign-key", "from-flag", "-d", "postgres://flag/db")
	t.Setenv("APP_TOKEN_SIGN_KEY", "from-env")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://flag/db", cfg.Storage.DB.DSN)
}

// TestGetStructuredConfig_MissingSignKey verifies server validation.
func TestGetStructuredConfig_MissingSignKey(t *testing.T) {
	withArgs(t, "-d", "postgres://flag/db")

	_, err := GetStructuredConfig()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestGetStorageConfig_OnlyNeedsDB verifies the seeding tool view.
func TestGetStorageConfig_OnlyNeedsDB(t *testing.T) {
	withArgs(t)
	t.Setenv("STORAGE_DB_HOST", "db")
	t.Setenv("STORAGE_DB_USER", "portobello")
	t.Setenv("STORAGE_DB_PASSWORD", "pw")

	cfg, err := GetStorageConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://portobello:pw@db:5432/portobello_dev?sslmode=disable", cfg.Storage.DB.ConnectionString())
}

// TestGetStorageConfig_NoDatabase verifies the storage error.
func TestGetStorageConfig_NoDatabase(t *testing.T) {
	withArgs(t)

	_, err := GetStorageConfig()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestGetClientConfig_Defaults verifies an anonymous client needs no settings.
func TestGetClientConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.False(t, cfg.Identity.Enabled())
}

// TestGetClientConfig_IdentityNeedsUsername verifies identity validation.
func TestGetClientConfig_IdentityNeedsUsername(t *testing.T) {
	withArgs(t, "-identity-url", "http://localhost:9003")

	_, err := GetClientConfig()
	assert.ErrorIs(t, err, ErrInvalidIdentityConfigs)
}

// TestGetClientConfig_Identity verifies a complete identity setup.
func TestGetClientConfig_Identity(t *testing.T) {
	withArgs(t, "-identity-url", "http://localhost:9003", "-username", "admin", "-strict", "-watch", "1m")

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Identity.Enabled())
	assert.Equal(t, "portobello", cfg.Identity.ClientID)
	assert.True(t, cfg.App.StrictValidation)
	assert.Equal(t, time.Minute, cfg.Workers.WatchInterval)
}
