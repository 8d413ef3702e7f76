package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string
	LogLevel    string
	LogFormat   string
	LogDir      string

	// Storage
	StoreEngine    string
	DataDir        string
	SQLitePath     string
	RedisAddr      string
	RedisPrefix    string
	StoreCacheSize int
	StoreCacheTTL  time.Duration

	// Database (postgres engine only)
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Game rules
	GameTimezone        string
	DefiResetHour       int
	StartingBalance     int
	EnforceFeatureGates bool

	MetricsFile string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", EnvDev),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogDir:      getEnv("LOG_DIR", "logs"),

		StoreEngine:    strings.ToLower(getEnv("STORE_ENGINE", EngineJSON)),
		DataDir:        getEnv("DATA_DIR", DefaultDataDir),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPrefix:    getEnv("REDIS_PREFIX", "minefut:"),
		StoreCacheSize: getEnvAsInt("STORE_CACHE_SIZE", 16),
		StoreCacheTTL:  getEnvAsDuration("STORE_CACHE_TTL", 5*time.Minute),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "minefut"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 4),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		GameTimezone:        getEnv("GAME_TIMEZONE", DefaultGameTimezone),
		DefiResetHour:       getEnvAsInt("DEFI_RESET_HOUR", DefaultDefiResetHour),
		StartingBalance:     getEnvAsInt("STARTING_BALANCE", DefaultStartingBalance),
		EnforceFeatureGates: getEnvAsBool("ENFORCE_FEATURE_GATES", true),

		MetricsFile: getEnv("METRICS_FILE", ""),
	}
	cfg.SQLitePath = getEnv("SQLITE_PATH", filepath.Join(cfg.DataDir, "minefut.db"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid configuration value
func (c *Config) Validate() error {
	switch c.StoreEngine {
	case EngineJSON, EngineSQLite, EnginePostgres, EngineRedis, EngineMemory:
	default:
		return fmt.Errorf("invalid STORE_ENGINE value %q (expected one of %s)", c.StoreEngine, strings.Join(SupportedEngines, ", "))
	}
	if c.DefiResetHour < 0 || c.DefiResetHour > 23 {
		return fmt.Errorf("invalid DEFI_RESET_HOUR value %d: must be between 0 and 23", c.DefiResetHour)
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("invalid STARTING_BALANCE value %d: must not be negative", c.StartingBalance)
	}
	if c.StoreCacheSize < 0 {
		return fmt.Errorf("invalid STORE_CACHE_SIZE value %d: must not be negative", c.StoreCacheSize)
	}
	if _, err := time.LoadLocation(c.GameTimezone); err != nil {
		return fmt.Errorf("invalid GAME_TIMEZONE value %q: %w", c.GameTimezone, err)
	}
	return nil
}

// Location returns the game time zone. Validate has already checked it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.GameTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
