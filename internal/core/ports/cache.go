// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// CacheRepository defines the interface for cache operations. Used for
// catalog read-through caching and checkout idempotency markers.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, keys ...string) (bool, error)

	// GetOrSet reads through the cache, calling fetch on a miss and storing
	// its result.
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error

	// SetNX stores the value only when the key is absent; reports whether
	// the write happened.
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)

	TTL(ctx context.Context, key string) (time.Duration, error)
	Ping(ctx context.Context) error
}
