package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUndefinedTable is raised when migrations have not been applied
	PgErrorCodeUndefinedTable = "42P01"
)

