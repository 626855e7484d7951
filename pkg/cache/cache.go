// Package cache stores rendered charts keyed by a hash of their inputs.
//
// A chart is fully determined by its record tree and its options, so the
// pipeline hashes both and looks the result up before drawing. Three
// backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared storage for several render workers
//   - [NullCache]: caching disabled
//
// Keys are built by a [Keyer]. [ScopedKeyer] prefixes every key, so
// several projects can share one Redis database.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value stored under key. A missing or expired entry is
	// a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry this cache owns.
	Clear(ctx context.Context) error

	Close() error
}

// Default lifetimes of cached entries.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)
