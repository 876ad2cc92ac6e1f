package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"logistics/config"
	deliverycontext "logistics/internal/delivery/context"
	domainerrors "logistics/internal/domain/errors"
	"logistics/internal/domain/service"
	"logistics/internal/infra/cache"
	mockService "logistics/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cacheFixtures wires the cache middleware in front of handlers that count their calls.
type cacheFixtures struct {
	echo  *echo.Echo
	calls map[string]int
}

func createTestCacheServer(t *testing.T, responseCache service.ResponseCache) *cacheFixtures {
	t.Helper()

	fx := &cacheFixtures{echo: echo.New(), calls: map[string]int{}}
	fx.echo.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	api := fx.echo.Group("/api")
	api.Use(NewCacheMiddleware(responseCache, slog.New(slog.DiscardHandler)).Handle)

	version := 0
	api.GET("/customers", func(c echo.Context) error {
		fx.calls["list"]++

		return c.JSON(http.StatusOK, map[string]any{"version": version, "query": c.QueryString()})
	})
	api.GET("/customers/:id", func(c echo.Context) error {
		fx.calls["get"]++

		return domainerrors.ErrNotFound
	})
	api.POST("/customers", func(c echo.Context) error {
		fx.calls["create"]++
		version++

		return c.JSON(http.StatusCreated, map[string]int{"version": version})
	})
	api.DELETE("/customers/:id", func(c echo.Context) error {
		fx.calls["delete"]++
		if c.Param("id") == "404" {
			return domainerrors.ErrNotFound
		}
		version++

		return c.NoContent(http.StatusNoContent)
	})

	return fx
}

func (fx *cacheFixtures) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func newMemoryCache(ttl time.Duration) service.ResponseCache {
	return cache.NewMemoryCache(config.MemoryCacheConfig{Capacity: 100, NumShards: 1}, "test", ttl)
}

func TestCacheMiddleware_HitReplaysStoredResponse(t *testing.T) {
	fx := createTestCacheServer(t, newMemoryCache(time.Minute))

	first := fx.do(http.MethodGet, "/api/customers?search=ann")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, deliverycontext.CacheMiss, first.Header().Get(deliverycontext.HeaderXCache))

	second := fx.do(http.MethodGet, "/api/customers?search=ann")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, deliverycontext.CacheHit, second.Header().Get(deliverycontext.HeaderXCache))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, first.Header().Get(echo.HeaderContentType), second.Header().Get(echo.HeaderContentType))
	assert.Equal(t, 1, fx.calls["list"])
}

func TestCacheMiddleware_DifferentQueriesMissEachOther(t *testing.T) {
	fx := createTestCacheServer(t, newMemoryCache(time.Minute))

	fx.do(http.MethodGet, "/api/customers?page=1")
	rec := fx.do(http.MethodGet, "/api/customers?page=2")

	assert.Equal(t, deliverycontext.CacheMiss, rec.Header().Get(deliverycontext.HeaderXCache))
	assert.Equal(t, 2, fx.calls["list"])
}

func TestCacheMiddleware_SuccessfulWriteInvalidatesEveryRoute(t *testing.T) {
	fx := createTestCacheServer(t, newMemoryCache(time.Minute))

	fx.do(http.MethodGet, "/api/customers")
	fx.do(http.MethodGet, "/api/customers?search=x")
	require.Equal(t, 2, fx.calls["list"])

	created := fx.do(http.MethodPost, "/api/customers")
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Empty(t, created.Header().Get(deliverycontext.HeaderXCache))

	after := fx.do(http.MethodGet, "/api/customers")
	assert.Equal(t, deliverycontext.CacheMiss, after.Header().Get(deliverycontext.HeaderXCache))
	assert.Contains(t, after.Body.String(), `"version":1`)

	fx.do(http.MethodGet, "/api/customers?search=x")
	assert.Equal(t, 4, fx.calls["list"])
}

func TestCacheMiddleware_FailedWriteKeepsCache(t *testing.T) {
	fx := createTestCacheServer(t, newMemoryCache(time.Minute))

	fx.do(http.MethodGet, "/api/customers")

	failed := fx.do(http.MethodDelete, "/api/customers/404")
	require.Equal(t, http.StatusNotFound, failed.Code)

	rec := fx.do(http.MethodGet, "/api/customers")
	assert.Equal(t, deliverycontext.CacheHit, rec.Header().Get(deliverycontext.HeaderXCache))
	assert.Equal(t, 1, fx.calls["list"])

	deleted := fx.do(http.MethodDelete, "/api/customers/1")
	require.Equal(t, http.StatusNoContent, deleted.Code)
	assert.Empty(t, deleted.Body.String())

	rec = fx.do(http.MethodGet, "/api/customers")
	assert.Equal(t, deliverycontext.CacheMiss, rec.Header().Get(deliverycontext.HeaderXCache))
}

func TestCacheMiddleware_ErrorsAreNeverCached(t *testing.T) {
	fx := createTestCacheServer(t, newMemoryCache(time.Minute))

	for i := 0; i < 2; i++ {
		rec := fx.do(http.MethodGet, "/api/customers/9")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"NOT_FOUND"`)
	}
	assert.Equal(t, 2, fx.calls["get"])
}

func TestCacheMiddleware_EntriesExpire(t *testing.T) {
	fx := createTestCacheServer(t, newMemoryCache(50*time.Millisecond))

	fx.do(http.MethodGet, "/api/customers")
	time.Sleep(150 * time.Millisecond)

	rec := fx.do(http.MethodGet, "/api/customers")
	assert.Equal(t, deliverycontext.CacheMiss, rec.Header().Get(deliverycontext.HeaderXCache))
	assert.Equal(t, 2, fx.calls["list"])
}

func TestCacheMiddleware_BackendFailuresFailOpen(t *testing.T) {
	responseCache := mockService.NewMockResponseCache(t)
	fx := createTestCacheServer(t, responseCache)
	backendErr := errors.New("connection refused")

	responseCache.EXPECT().Namespace(mock.Anything).Return("", backendErr).Once()
	rec := fx.do(http.MethodGet, "/api/customers")
	assert.Equal(t, http.StatusOK, rec.Code)

	responseCache.EXPECT().Namespace(mock.Anything).Return("ns", nil).Once()
	responseCache.EXPECT().Get(mock.Anything, "ns::/api/customers?").Return(nil, false, backendErr).Once()
	responseCache.EXPECT().Set(mock.Anything, "ns::/api/customers?", mock.AnythingOfType("*service.CachedResponse")).Return(backendErr).Once()
	rec = fx.do(http.MethodGet, "/api/customers")
	assert.Equal(t, http.StatusOK, rec.Code)

	responseCache.EXPECT().Clear(mock.Anything).Return(backendErr).Once()
	rec = fx.do(http.MethodPost, "/api/customers")
	assert.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, 2, fx.calls["list"])
}

func TestCacheMiddleware_ClearRunsBeforeResponseIsSent(t *testing.T) {
	responseCache := mockService.NewMockResponseCache(t)
	fx := createTestCacheServer(t, responseCache)

	rec := httptest.NewRecorder()
	responseCache.EXPECT().Clear(mock.Anything).
		Run(func(context.Context) {
			assert.False(t, rec.Flushed)
			assert.Empty(t, rec.Body.String(), "response body must still be held when the cache is cleared")
		}).
		Return(nil).Once()

	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/customers", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":`+strconv.Itoa(1))
}

func TestCacheKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/shipments?ordering=-SH_CHARGES&page=2", nil)
	assert.Equal(t, "ns::/api/shipments?ordering=-SH_CHARGES&page=2", cacheKey("ns", req))

	reordered := httptest.NewRequest(http.MethodGet, "/api/shipments?page=2&ordering=-SH_CHARGES", nil)
	assert.NotEqual(t, cacheKey("ns", req), cacheKey("ns", reordered))
}
