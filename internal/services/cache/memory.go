package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const (
	DefaultTTL             = 30 * time.Minute
	DefaultCleanupInterval = time.Minute
)

// Config configures a MemoryCache
type Config struct {
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
	// MaxEntries bounds the cache size; 0 means unbounded
	MaxEntries int
}

// MemoryCache implements Cache in process memory
type MemoryCache[V any] struct {
	mu     sync.RWMutex
	items  map[string]cacheItem[V]
	config Config

	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	evictions atomic.Int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type cacheItem[V any] struct {
	value  V
	expiry time.Time
}

// NewMemoryCache creates a cache and starts its expiry sweeper. Call Stop
// to end the sweeper.
func NewMemoryCache[V any](cfg Config) *MemoryCache[V] {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = DefaultTTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultCleanupInterval
	}

	mc := &MemoryCache[V]{
		items:  make(map[string]cacheItem[V]),
		config: cfg,
		stopCh: make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.cleanupExpired()

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache[V]) Get(ctx context.Context, key string) (V, bool) {
	mc.mu.RLock()
	item, exists := mc.items[key]
	mc.mu.RUnlock()

	if !exists || time.Now().After(item.expiry) {
		if exists {
			mc.Delete(ctx, key)
		}
		mc.misses.Add(1)
		var zero V
		return zero, false
	}

	mc.hits.Add(1)
	return item.value, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = mc.config.DefaultTTL
	}

	mc.mu.Lock()
	if _, replacing := mc.items[key]; !replacing {
		mc.makeRoomLocked()
	}
	mc.items[key] = cacheItem[V]{value: value, expiry: time.Now().Add(ttl)}
	mc.mu.Unlock()

	mc.sets.Add(1)
}

// Delete removes a value from the cache
func (mc *MemoryCache[V]) Delete(ctx context.Context, key string) {
	mc.mu.Lock()
	delete(mc.items, key)
	mc.mu.Unlock()
}

// Stats returns cache statistics
func (mc *MemoryCache[V]) Stats() Stats {
	mc.mu.RLock()
	entries := len(mc.items)
	mc.mu.RUnlock()

	return Stats{
		Hits:      mc.hits.Load(),
		Misses:    mc.misses.Load(),
		Sets:      mc.sets.Load(),
		Evictions: mc.evictions.Load(),
		Entries:   entries,
	}
}

// Stop gracefully shuts down the cache sweeper. It is safe to call twice.
func (mc *MemoryCache[V]) Stop() {
	mc.stopOnce.Do(func() {
		close(mc.stopCh)
	})
	mc.wg.Wait()
}

// cleanupExpired removes expired items periodically
func (mc *MemoryCache[V]) cleanupExpired() {
	defer mc.wg.Done()
	ticker := time.NewTicker(mc.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.removeExpiredLocked(time.Now())
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache[V]) removeExpiredLocked(now time.Time) {
	for key, item := range mc.items {
		if now.After(item.expiry) {
			delete(mc.items, key)
			mc.evictions.Add(1)
		}
	}
}

// makeRoomLocked frees one slot when the cache is full: expired items go
// first, then the item closest to expiry
func (mc *MemoryCache[V]) makeRoomLocked() {
	if mc.config.MaxEntries <= 0 || len(mc.items) < mc.config.MaxEntries {
		return
	}

	mc.removeExpiredLocked(time.Now())
	if len(mc.items) < mc.config.MaxEntries {
		return
	}

	var (
		oldestKey    string
		oldestExpiry time.Time
		found        bool
	)
	for key, item := range mc.items {
		if !found || item.expiry.Before(oldestExpiry) {
			oldestKey, oldestExpiry, found = key, item.expiry, true
		}
	}
	delete(mc.items, oldestKey)
	mc.evictions.Add(1)
}
