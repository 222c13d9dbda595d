package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// No config file in the test working directory, so Load falls through
	// to the defaults.
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeout)
	assert.NotEmpty(t, cfg.MongoDB.URI)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongodb")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb", cfg.Storage.Driver)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("POINTGRID_TEST_STR", "value")
	t.Setenv("POINTGRID_TEST_INT", "42")
	t.Setenv("POINTGRID_TEST_SLICE", "a,b,c")

	assert.Equal(t, "value", GetEnv("POINTGRID_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("POINTGRID_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, GetEnvAsInt("POINTGRID_TEST_INT", 0))
	assert.Equal(t, 7, GetEnvAsInt("POINTGRID_TEST_MISSING", 7))
	assert.Equal(t, []string{"a", "b", "c"}, GetEnvAsSlice("POINTGRID_TEST_SLICE", ",", nil))
}
