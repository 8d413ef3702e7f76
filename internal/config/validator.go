package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables each store engine cannot run without
var RequiredEnvVars = map[string][]string{
	EngineJSON:     {"DATA_DIR"},
	EngineSQLite:   {"SQLITE_PATH"},
	EnginePostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	EngineRedis:    {"REDIS_ADDR"},
	EngineMemory:   nil,
}

// ValidateEnv checks that the variables required by the selected store
// engine are set and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	engine := strings.ToLower(getEnv("STORE_ENGINE", EngineJSON))
	required, ok := RequiredEnvVars[engine]
	if !ok {
		return fmt.Errorf("unknown STORE_ENGINE %q", engine)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s engine: %s", engine, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("ENV_SCHEMA_VERSION") == "" {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set (expected: %s)", ExpectedEnvSchemaVersion))
	}

	if strings.EqualFold(os.Getenv("STORE_ENGINE"), EnginePostgres) && os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if strings.EqualFold(os.Getenv("STORE_ENGINE"), EngineMemory) {
		warnings = append(warnings, "STORE_ENGINE=memory does not persist progress across restarts")
	}

	return warnings, nil
}
