package config

// Store engines
const (
	EngineJSON     = "json"
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
	EngineRedis    = "redis"
	EngineMemory   = "memory"
)

// SupportedEngines lists the accepted STORE_ENGINE values
var SupportedEngines = []string{EngineJSON, EngineSQLite, EnginePostgres, EngineRedis, EngineMemory}

// Environments
const (
	EnvDev  = "dev"
	EnvProd = "prod"
	EnvTest = "test"
)

// Defaults
const (
	DefaultDataDir         = "data"
	DefaultGameTimezone    = "Europe/Paris"
	DefaultDefiResetHour   = 19
	DefaultStartingBalance = 500
)
