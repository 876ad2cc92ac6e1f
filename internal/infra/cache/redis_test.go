package cache

import (
	"context"
	"testing"
	"time"

	"logistics/config"
	"logistics/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (service.ResponseCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := NewRedisClient(config.RedisCacheConfig{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, "test", ttl), srv
}

func TestRedisCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestRedisCache(t, time.Minute)

	ns, err := c.Namespace(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test::0", ns)

	key := ns + "::/api/shipments?ordering=-SH_CHARGES"
	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	want := &service.CachedResponse{Status: 200, ContentType: "application/json", Body: []byte(`{"results":[]}`)}
	require.NoError(t, c.Set(ctx, key, want))

	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRedisCache_ClearMovesNamespace(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestRedisCache(t, time.Minute)

	before, err := c.Namespace(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Clear(ctx))
	require.NoError(t, c.Clear(ctx))

	after, err := c.Namespace(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
	assert.Equal(t, "test::2", after)

	generation, err := srv.Get("test::generation")
	require.NoError(t, err)
	assert.Equal(t, "2", generation)
}

func TestRedisCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestRedisCache(t, 30*time.Second)

	require.NoError(t, c.Set(ctx, "k", &service.CachedResponse{Status: 200}))
	assert.Equal(t, 30*time.Second, srv.TTL("k"))

	srv.FastForward(31 * time.Second)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_UnavailableServerReturnsError(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestRedisCache(t, time.Minute)
	srv.Close()

	_, err := c.Namespace(ctx)
	require.Error(t, err)

	_, _, err = c.Get(ctx, "k")
	require.Error(t, err)
}
