// Package database owns the PostgreSQL side of the postgres storage engine:
// the pgx pool that backs the documents table and its goose migrations.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings sizes the pool. The engine issues one statement per document
// operation under the command lock, so a handful of connections is plenty.
type PoolSettings struct {
	MaxConns    int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

func (s PoolSettings) apply(cfg *pgxpool.Config) {
	conns := s.MaxConns
	if conns > math.MaxInt32 {
		conns = math.MaxInt32
	}
	if conns < DefaultMinConnections {
		conns = DefaultMinConnections
	}
	cfg.MaxConns = int32(conns)
	cfg.MinConns = DefaultMinConnections
	if s.MaxLifetime > 0 {
		cfg.MaxConnLifetime = s.MaxLifetime
	}
	if s.MaxIdleTime > 0 {
		cfg.MaxConnIdleTime = s.MaxIdleTime
	}
}

// NewPool opens and pings the pool the document store runs on. It does not
// migrate; see Migrate.
func NewPool(ctx context.Context, connString string, settings PoolSettings) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	settings.apply(cfg)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"max_conns", cfg.MaxConns)
	return pool, nil
}
