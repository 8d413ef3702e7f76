package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Minefut_Go/internal/config"
	"github.com/osse101/Minefut_Go/internal/database"
	"github.com/osse101/Minefut_Go/internal/storage"
)

// ConnectPostgres opens the pgx pool described by cfg, retrying while the
// server comes up.
func ConnectPostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	err := storage.RetryConnect(ctx, config.EnginePostgres, storage.DefaultConnectRetries, func() error {
		p, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolSettings{
			MaxConns:    cfg.DBMaxConns,
			MaxIdleTime: cfg.DBMaxConnIdleTime,
			MaxLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnect, err)
	}
	return pool, nil
}
