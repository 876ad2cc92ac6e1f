package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	deliverycontext "logistics/internal/delivery/context"
	"logistics/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// CacheMiddleware routes reads through the response cache and invalidates it after successful writes.
type CacheMiddleware struct {
	cache  service.ResponseCache
	logger *slog.Logger
}

// NewCacheMiddleware creates the cache dispatcher.
func NewCacheMiddleware(cache service.ResponseCache, logger *slog.Logger) *CacheMiddleware {
	return &CacheMiddleware{cache: cache, logger: logger}
}

// Handle serves GET requests from the cache when possible and stores 2xx
// responses on a miss. Other methods always reach the handler; a 2xx result
// clears the whole cache before the response is sent.
func (m *CacheMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch c.Request().Method {
		case http.MethodGet:
			return m.read(c, next)
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			return m.write(c, next)
		default:
			return next(c)
		}
	}
}

func (m *CacheMiddleware) read(c echo.Context, next echo.HandlerFunc) error {
	ctx := c.Request().Context()
	res := c.Response()

	namespace, err := m.cache.Namespace(ctx)
	if err != nil {
		m.log(ctx).Warn("Response cache unavailable, serving uncached", slog.Any("error", err))
		res.Header().Set(deliverycontext.HeaderXCache, deliverycontext.CacheMiss)

		return next(c)
	}

	key := cacheKey(namespace, c.Request())

	cached, ok, err := m.cache.Get(ctx, key)
	if err != nil {
		m.log(ctx).Warn("Failed to read response cache", slog.String("key", key), slog.Any("error", err))
	}
	if ok {
		res.Header().Set(deliverycontext.HeaderXCache, deliverycontext.CacheHit)

		return c.Blob(cached.Status, cached.ContentType, cached.Body)
	}

	res.Header().Set(deliverycontext.HeaderXCache, deliverycontext.CacheMiss)

	buf, err := buffered(c, next)
	if err != nil {
		return err
	}

	if isSuccess(buf.status) {
		entry := &service.CachedResponse{
			Status:      buf.status,
			ContentType: res.Header().Get(echo.HeaderContentType),
			Body:        buf.body.Bytes(),
		}
		if err := m.cache.Set(ctx, key, entry); err != nil {
			m.log(ctx).Warn("Failed to store response in cache", slog.String("key", key), slog.Any("error", err))
		}
	}

	return buf.flush()
}

func (m *CacheMiddleware) write(c echo.Context, next echo.HandlerFunc) error {
	ctx := c.Request().Context()

	buf, err := buffered(c, next)
	if err != nil {
		return err
	}

	if isSuccess(buf.status) {
		// The write is already committed, so a failed clear must not turn it into an error.
		if err := m.cache.Clear(context.WithoutCancel(ctx)); err != nil {
			m.log(ctx).Error("Failed to invalidate response cache", slog.Any("error", err))
		}
	}

	return buf.flush()
}

func (m *CacheMiddleware) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// cacheKey identifies a read by its path and its exact raw query string.
func cacheKey(namespace string, req *http.Request) string {
	return namespace + "::" + req.URL.Path + "?" + req.URL.RawQuery
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// bufferedWriter holds a handler's response so it can be inspected before it is sent.
type bufferedWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *bufferedWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	return w.body.Write(b)
}

// flush sends the held response to the underlying writer.
func (w *bufferedWriter) flush() error {
	if w.status == 0 {
		return nil
	}

	w.ResponseWriter.WriteHeader(w.status)
	if w.body.Len() == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(w.body.Bytes())

	return err
}

// buffered runs next with the response held in memory. The original writer is
// restored before returning, so the error handler writes to the client directly.
func buffered(c echo.Context, next echo.HandlerFunc) (*bufferedWriter, error) {
	res := c.Response()
	original := res.Writer
	buf := &bufferedWriter{ResponseWriter: original}

	res.Writer = buf
	err := next(c)
	res.Writer = original

	if err != nil {
		if res.Committed {
			// The handler wrote part of a response before failing; send what it wrote.
			_ = buf.flush()
		}

		return nil, err
	}

	return buf, nil
}
