package cache

import (
	"context"
	"time"
)

// Cache is a keyed store with per-entry expiry
type Cache[V any] interface {
	// Get returns the value for key if present and not expired
	Get(ctx context.Context, key string) (V, bool)

	// Set stores value under key for ttl. A ttl <= 0 uses the cache default.
	Set(ctx context.Context, key string, value V, ttl time.Duration)

	// Delete removes key
	Delete(ctx context.Context, key string)
}

// Stats provides statistics about cache usage
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Evictions int64 `json:"evictions"`
	Entries   int   `json:"entries"`
}

// StatsProvider is implemented by caches that report statistics
type StatsProvider interface {
	Stats() Stats
}
