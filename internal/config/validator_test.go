package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_VersionMismatch(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingPostgresVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORE_ENGINE", EnginePostgres)
	t.Setenv("DB_USER", "user")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables for postgres engine")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.NotContains(t, err.Error(), "DB_USER")
}

func TestValidateEnv_MemoryNeedsNothing(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORE_ENGINE", EngineMemory)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "ENV_SCHEMA_VERSION")
	assert.Contains(t, warnings[1], "does not persist")
}

func TestValidateEnv_JSONRequiresDataDir(t *testing.T) {
	clearEnvVars(t)

	require.Error(t, ValidateEnv())

	t.Setenv("DATA_DIR", "data")
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
