// Package cache provides content-addressed caching of computed layouts.
//
// Layout computation is a pure function of its inputs, so cached results
// never go stale; keys are SHA-256 hashes of the canonical (span spec,
// table spec) pair. Three backends implement the [Cache] interface:
//
//   - [FileCache]: directory of JSON entries for CLI usage
//   - [RedisCache]: shared cache for multi-instance serve deployments
//   - [NullCache]: disables caching (tests, --no-cache)
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values keyed by string.
//
// Get reports a miss with (nil, false, nil); errors are reserved for
// backend failures. A ttl of zero means the entry never expires, which is
// the norm here since layout results are immutable.
type Cache interface {
	// Get retrieves a cached value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional expiry (zero = no expiry).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
