// Package cachemanager provides a typed in-memory cache with TTL semantics.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is the caching contract used by read-through consumers.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
