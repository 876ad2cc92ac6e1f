package cache

import (
	"context"
	"strconv"
	"time"

	"logistics/config"
	"logistics/internal/domain/service"
	"logistics/internal/errors"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// redisCache shares cached responses between processes. The current
// generation lives under its own key, so Clear is a single INCR and every
// replica moves to the new namespace at once.
type redisCache struct {
	client        redis.UniversalClient
	prefix        string
	generationKey string
	ttl           time.Duration
}

// NewRedisClient builds a client from configuration. It does not dial until first use.
func NewRedisClient(cfg config.RedisCacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisCache creates a ResponseCache on top of client.
func NewRedisCache(client redis.UniversalClient, prefix string, ttl time.Duration) service.ResponseCache {
	return &redisCache{
		client:        client,
		prefix:        prefix,
		generationKey: prefix + keySeparator + "generation",
		ttl:           ttl,
	}
}

func (c *redisCache) Namespace(ctx context.Context) (string, error) {
	generation, err := c.client.Get(ctx, c.generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", errors.Wrap(err, "failed to read cache generation")
	}

	return c.prefix + keySeparator + strconv.FormatInt(generation, 10), nil
}

func (c *redisCache) Get(ctx context.Context, key string) (*service.CachedResponse, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read cached response")
	}

	var resp service.CachedResponse
	if err := msgpack.Unmarshal(data, &resp); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode cached response")
	}

	return &resp, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, resp *service.CachedResponse) error {
	data, err := msgpack.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "failed to encode cached response")
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store cached response")
	}

	return nil
}

func (c *redisCache) Clear(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.generationKey).Err(); err != nil {
		return errors.Wrap(err, "failed to advance cache generation")
	}

	return nil
}
