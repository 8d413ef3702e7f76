package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Minefut_Go/internal/config"
	"github.com/osse101/Minefut_Go/internal/database"
	"github.com/osse101/Minefut_Go/internal/database/postgres"
	"github.com/osse101/Minefut_Go/internal/repository"
	"github.com/osse101/Minefut_Go/internal/storage"
	"github.com/osse101/Minefut_Go/internal/storage/jsonfile"
	"github.com/osse101/Minefut_Go/internal/storage/redisstore"
	"github.com/osse101/Minefut_Go/internal/storage/sqlite"
	"github.com/osse101/Minefut_Go/internal/validation"
)

// OpenStore opens the document store selected by cfg.StoreEngine. Network
// engines are retried with backoff while connecting; the postgres engine
// is migrated before use. Persistent engines get the LRU cache in front
// when StoreCacheSize > 0.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.DocumentStore, error) {
	store, err := openEngine(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	slog.Info(LogMsgStoreOpened, LogFieldEngine, cfg.StoreEngine)

	if cfg.StoreEngine == config.EngineMemory || cfg.StoreCacheSize == 0 {
		return store, nil
	}
	slog.Info(LogMsgStoreCacheOn, LogFieldSize, cfg.StoreCacheSize, LogFieldTTL, cfg.StoreCacheTTL)
	return storage.NewCachedStore(store, cfg.StoreCacheSize, cfg.StoreCacheTTL), nil
}

func openEngine(ctx context.Context, cfg *config.Config) (repository.DocumentStore, error) {
	switch cfg.StoreEngine {
	case config.EngineMemory:
		return storage.NewMemoryStore(), nil

	case config.EngineJSON:
		store, err := jsonfile.New(cfg.DataDir, jsonfile.WithValidator(validation.NewSchemaValidator()))
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.EngineSQLite:
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := storage.RetryConnect(ctx, cfg.StoreEngine, storage.DefaultConnectRetries, func() error {
			return store.Ping(ctx)
		}); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnect, err)
		}
		return store, nil

	case config.EngineRedis:
		store := redisstore.Dial(cfg.RedisAddr, redisstore.Config{Prefix: cfg.RedisPrefix})
		if err := storage.RetryConnect(ctx, cfg.StoreEngine, storage.DefaultConnectRetries, func() error {
			return store.Ping(ctx)
		}); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnect, err)
		}
		return store, nil

	case config.EnginePostgres:
		pool, err := ConnectPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsDone)
		return postgres.NewDocumentStore(pool), nil
	}
	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownEngine, cfg.StoreEngine)
}
