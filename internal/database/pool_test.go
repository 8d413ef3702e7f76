package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testDBConnString string
	testSettings     = PoolSettings{MaxConns: 2, MaxIdleTime: time.Minute, MaxLifetime: 5 * time.Minute}
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDatabase(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "::not a url::", PoolSettings{MaxConns: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestPoolSettings_Apply(t *testing.T) {
	tests := []struct {
		name     string
		settings PoolSettings
		wantMax  int32
		wantIdle time.Duration
	}{
		{"sized", PoolSettings{MaxConns: 4, MaxIdleTime: time.Minute}, 4, time.Minute},
		{"zero keeps one connection", PoolSettings{}, DefaultMinConnections, 0},
		{"clamped to int32", PoolSettings{MaxConns: 1 << 40}, 1<<31 - 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/minefut")
			require.NoError(t, err)
			idle := cfg.MaxConnIdleTime

			tt.settings.apply(cfg)

			assert.Equal(t, tt.wantMax, cfg.MaxConns)
			assert.Equal(t, int32(DefaultMinConnections), cfg.MinConns)
			if tt.wantIdle > 0 {
				assert.Equal(t, tt.wantIdle, cfg.MaxConnIdleTime)
			} else {
				assert.Equal(t, idle, cfg.MaxConnIdleTime, "unset idle time keeps the pgx default")
			}
		})
	}
}

// TestPool_ConnectionsReleased verifies connections are returned to the pool
func TestPool_ConnectionsReleased(t *testing.T) {
	requireDatabase(t)

	ctx := context.Background()
	pool, err := NewPool(ctx, testDBConnString, testSettings)
	require.NoError(t, err)
	defer pool.Close()

	for i := 0; i < 5; i++ {
		var result int
		require.NoError(t, pool.QueryRow(ctx, "SELECT 1").Scan(&result))
		assert.Equal(t, 1, result)
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
}

func TestMigrate_Idempotent(t *testing.T) {
	requireDatabase(t)

	ctx := context.Background()
	pool, err := NewPool(ctx, testDBConnString, testSettings)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool))

	version, err := MigrationStatus(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	var exists bool
	require.NoError(t, pool.QueryRow(ctx, `SELECT to_regclass('public.documents') IS NOT NULL`).Scan(&exists))
	assert.True(t, exists)
}
