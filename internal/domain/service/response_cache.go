// Package service declares the ports the application needs from infrastructure.
package service

import (
	"context"
)

// CachedResponse is a stored HTTP response replayed verbatim on a cache hit.
type CachedResponse struct {
	Status      int    `msgpack:"s"`
	ContentType string `msgpack:"c"`
	Body        []byte `msgpack:"b"`
}

// ResponseCache stores serialized read responses.
//
// Keys are scoped by a namespace. Clear retires the current namespace in
// constant time, so every key written before it becomes unreachable and
// expires through its TTL. Callers read the namespace once per request and
// build both the lookup key and the store key from it, which keeps a response
// computed before a Clear from landing in the namespace that follows it.
type ResponseCache interface {
	// Namespace returns the current key namespace.
	Namespace(ctx context.Context) (string, error)

	// Get returns the response stored under key, if any.
	Get(ctx context.Context, key string) (*CachedResponse, bool, error)

	// Set stores resp under key with the configured TTL.
	Set(ctx context.Context, key string, resp *CachedResponse) error

	// Clear invalidates every stored response.
	Clear(ctx context.Context) error
}
