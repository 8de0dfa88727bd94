// Package cache defines the key-value contract used by the search result
// cache.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss signals a key absent from the cache.
var ErrMiss = errors.New("cache: miss")

// Store is a TTL-aware key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close()
}
