package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuild_LaterConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:    App{TokenSignKey: "env-key", TokenIssuer: "env-issuer"},
			Server: Server{HTTPAddress: ":1000"},
		},
		&StructuredConfig{
			App: App{TokenSignKey: "flag-key"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer, "zero fields must not override")
	assert.Equal(t, ":1000", cfg.Server.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_SIGN_KEY": "from-env"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-env", b.configs[0].App.TokenSignKey)
}

func TestWithEnv_RecordsParseError(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "never"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-token-issuer", "flag-issuer"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithFlags_RecordsParseError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "error parsing flags")
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONFile(t, `{"app": {"token_issuer": "first"}}`)
	second := writeTempJSONFile(t, `{"app": {"token_issuer": "second"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilder_JSONOverridesFlagsOverridesEnv(t *testing.T) {
	path := writeTempJSONFile(t, `{"app": {"token_duration": "5m"}}`)
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env-key",
		"APP_TOKEN_ISSUER":   "env-issuer",
		"APP_TOKEN_DURATION": "1m",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-token-issuer", "flag-issuer", "-c", path}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 5*time.Minute, cfg.App.TokenDuration)
}
