// Package cache provides the response cache backends.
package cache

import (
	"context"
	"log/slog"

	"logistics/config"
	"logistics/internal/domain/lifecycle"
	"logistics/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// keySeparator joins the prefix, the generation and the request identity of a cache key.
const keySeparator = "::"

// ResponseCacheParams holds dependencies for ResponseCache, injected by Fx
type ResponseCacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewResponseCache creates a ResponseCache based on configuration
func NewResponseCache(params ResponseCacheParams) (service.ResponseCache, error) {
	cfg := params.Config.Cache
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("cache configuration is missing")
	}

	switch cfg.Provider {
	case config.CacheProviderMemory, "":
		logger.Info("Using in-process response cache",
			slog.Duration("ttl", cfg.TTL),
			slog.Int("capacity", cfg.Memory.Capacity),
		)

		return NewMemoryCache(cfg.Memory, cfg.KeyPrefix, cfg.TTL), nil

	case config.CacheProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using Redis response cache",
			slog.String("addr", cfg.Redis.Addr),
			slog.Int("db", cfg.Redis.DB),
			slog.Duration("ttl", cfg.TTL),
		)

		client := NewRedisClient(cfg.Redis)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
			},
			OnStop: func(_ context.Context) error {
				logger.Info("Closing Redis response cache")

				return client.Close()
			},
		})

		return NewRedisCache(client, cfg.KeyPrefix, cfg.TTL), nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}
