package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache[[]string](Config{})
	defer mc.Stop()

	_, ok := mc.Get(ctx, "abc123")
	assert.False(t, ok)

	mc.Set(ctx, "abc123", []string{"hello", "world"}, 0)
	value, ok := mc.Get(ctx, "abc123")
	assert.True(t, ok)
	assert.Equal(t, []string{"hello", "world"}, value)

	stats := mc.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.Equal(t, 1, stats.Entries)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache[int](Config{})
	defer mc.Stop()

	mc.Set(ctx, "short", 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := mc.Get(ctx, "short")
	assert.False(t, ok)
	assert.Equal(t, 0, mc.Stats().Entries)
}

func TestMemoryCache_Sweeper(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache[int](Config{CleanupInterval: 5 * time.Millisecond})
	defer mc.Stop()

	mc.Set(ctx, "short", 1, time.Millisecond)

	assert.Eventually(t, func() bool {
		return mc.Stats().Entries == 0
	}, time.Second, 5*time.Millisecond)
	assert.GreaterOrEqual(t, mc.Stats().Evictions, int64(1))
}

func TestMemoryCache_MaxEntries(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache[string](Config{MaxEntries: 2})
	defer mc.Stop()

	mc.Set(ctx, "first", "a", time.Minute)
	mc.Set(ctx, "second", "b", time.Hour)
	mc.Set(ctx, "third", "c", time.Hour)

	_, ok := mc.Get(ctx, "first")
	assert.False(t, ok, "entry closest to expiry is evicted")
	_, ok = mc.Get(ctx, "second")
	assert.True(t, ok)
	_, ok = mc.Get(ctx, "third")
	assert.True(t, ok)
	assert.Equal(t, 2, mc.Stats().Entries)
}

func TestMemoryCache_ReplaceDoesNotEvict(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache[string](Config{MaxEntries: 2})
	defer mc.Stop()

	mc.Set(ctx, "first", "a", time.Hour)
	mc.Set(ctx, "second", "b", time.Hour)
	mc.Set(ctx, "second", "b2", time.Hour)

	value, ok := mc.Get(ctx, "second")
	assert.True(t, ok)
	assert.Equal(t, "b2", value)
	_, ok = mc.Get(ctx, "first")
	assert.True(t, ok)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache[string](Config{})
	defer mc.Stop()

	mc.Set(ctx, "key", "value", 0)
	mc.Delete(ctx, "key")

	_, ok := mc.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryCache_StopTwice(t *testing.T) {
	mc := NewMemoryCache[string](Config{})
	mc.Stop()
	assert.NotPanics(t, mc.Stop)
}
