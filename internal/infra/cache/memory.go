package cache

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"logistics/config"
	"logistics/internal/domain/service"

	"github.com/viccon/sturdyc"
)

const (
	defaultCapacity           = 10000
	defaultNumShards          = 10
	defaultEvictionPercentage = 10
)

// memoryCache keeps responses in a sharded in-process sturdyc client.
// Clear bumps a generation counter instead of walking the shards.
type memoryCache struct {
	client     *sturdyc.Client[*service.CachedResponse]
	prefix     string
	generation atomic.Uint64
}

// NewMemoryCache creates a process-local ResponseCache.
func NewMemoryCache(cfg config.MemoryCacheConfig, prefix string, ttl time.Duration) service.ResponseCache {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	numShards := cfg.NumShards
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	evictionPercentage := cfg.EvictionPercentage
	if evictionPercentage <= 0 || evictionPercentage > 100 {
		evictionPercentage = defaultEvictionPercentage
	}

	return &memoryCache{
		client: sturdyc.New[*service.CachedResponse](capacity, numShards, ttl, evictionPercentage),
		prefix: prefix,
	}
}

func (c *memoryCache) Namespace(_ context.Context) (string, error) {
	return c.prefix + keySeparator + strconv.FormatUint(c.generation.Load(), 10), nil
}

func (c *memoryCache) Get(_ context.Context, key string) (*service.CachedResponse, bool, error) {
	resp, ok := c.client.Get(key)

	return resp, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, resp *service.CachedResponse) error {
	c.client.Set(key, resp)

	return nil
}

func (c *memoryCache) Clear(_ context.Context) error {
	c.generation.Add(1)

	return nil
}
