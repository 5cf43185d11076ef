// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed cache for serialized public API
// responses, keyed by resource identity. Reads serve the cached bytes;
// every mutation on a resource invalidates its key before responding, so
// the next read refetches from storage. The TTL bounds staleness should
// an invalidation ever be lost.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// respKeyPrefix namespaces response cache keys in Valkey.
	respKeyPrefix = "resp:"

	// DefaultResponseTTL is how long a cached response stays valid.
	DefaultResponseTTL = 5 * time.Minute

	// KeyPublishedNews is the resource key for the public news listing.
	KeyPublishedNews = "news:published"

	// KeySettings is the resource key for the site settings singleton.
	KeySettings = "settings"
)

// ResponseCache caches serialized JSON responses in Valkey. A nil
// *ResponseCache is valid and disables caching, so callers never need to
// branch on whether Valkey is configured.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get retrieves the cached response for a resource key. Returns false on miss.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if rc == nil {
		return nil, false
	}
	val, err := rc.client.Get(ctx, respKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, true
}

// Set stores a serialized response for a resource key with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if rc == nil {
		return
	}
	if err := rc.client.Set(ctx, respKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a resource from the cache. Called after any mutation
// on the same resource.
func (rc *ResponseCache) Invalidate(ctx context.Context, keys ...string) {
	if rc == nil {
		return
	}
	for _, key := range keys {
		if err := rc.client.Del(ctx, respKeyPrefix+key).Err(); err != nil {
			slog.Warn("response cache invalidate error", "key", key, "error", err)
			continue
		}
		slog.Debug("response cache invalidated", "key", key)
	}
}
