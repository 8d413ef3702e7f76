package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, the new one included
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting Minefut"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Store Messages
// =============================================================================

const (
	LogMsgStoreOpened     = "Document store opened"
	LogMsgStoreCacheOn    = "Document cache enabled"
	LogMsgMigrationsDone  = "Database migrations applied"
	ErrMsgUnknownEngine   = "unknown store engine"
	ErrMsgFailedOpenStore = "failed to open document store"
	ErrMsgFailedConnect   = "failed to connect to store"
	ErrMsgFailedMigrate   = "failed to apply migrations"
)

// =============================================================================
// Catalog Messages
// =============================================================================

const (
	LogMsgCatalogLoaded     = "Catalog loaded"
	ErrMsgFailedLoadCatalog = "failed to load catalog"
	ErrMsgFailedCalendar    = "failed to load game calendar"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgDefiHandlerRegistered      = "Task progress handler registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown       = "Shutting down..."
	LogMsgMetricsWritten     = "Metrics textfile written"
	LogMsgMetricsWriteFailed = "Metrics textfile write failed"
	LogMsgStoreCloseFailed   = "Document store close failed"
	LogMsgStopped            = "Stopped"
)

// Log field keys
const (
	LogFieldEngine     = "engine"
	LogFieldSize       = "size"
	LogFieldTTL        = "ttl"
	LogFieldPlayers    = "players"
	LogFieldChallenges = "challenges"
	LogFieldTasks      = "tasks"
	LogFieldPasses     = "passes"
	LogFieldPath       = "path"
	LogFieldError      = "error"
)
