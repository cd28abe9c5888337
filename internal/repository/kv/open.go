package kv

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Taichi-iskw/tv-guide/internal/config"
)

// Open creates the store backend selected by cfg.Store
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, error) {
	switch cfg.Store {
	case config.StoreFile, "":
		logger.Debug("using file store", zap.String("path", cfg.FavoritesPath))
		return NewFileStore(cfg.FavoritesPath), nil

	case config.StorePostgres:
		pool, err := config.NewDatabasePool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logger.Debug("using postgres store")
		return NewPostgresStore(pool), nil

	case config.StoreRedis:
		store, err := NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		logger.Debug("using redis store")
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported store: %s", cfg.Store)
	}
}
