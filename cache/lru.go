package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/dkorovin/ordkit/internal/singleflight"
	"github.com/dkorovin/ordkit/internal/util"
	"github.com/dkorovin/ordkit/optional"
	"github.com/dkorovin/ordkit/policy/lru"
)

// ErrNoLoader is returned by GetOrLoad when no Loader was configured in Options.
var ErrNoLoader = errors.New("cache: no Loader provided")

// LRU is a bounded key-value store that evicts the least recently used entry
// when full. Every successful read or write promotes the entry to most
// recent. All methods are safe for concurrent use: a single mutex serializes
// access to the whole structure. The lock covers one call at a time; a Get
// followed by a Set is not atomic as a pair.
type LRU[K comparable, V any] struct {
	mu sync.Mutex
	s  *store[K, V]

	onMiss func(K) V
	loader func(ctx context.Context, k K) (V, error)

	// singleflight group for coalescing concurrent loads in GetOrLoad.
	sf singleflight.Group[K, V]

	// Monotonic lookup counters, updated on every Get-family call and read
	// lock-free by monitoring code (separate cache lines to avoid false
	// sharing with the mutex).
	_          util.CacheLinePad
	hits       util.PaddedAtomicInt64
	misses     util.PaddedAtomicInt64
	softMisses util.PaddedAtomicInt64
}

// NewLRU constructs an LRU cache. Panics if opt.MaxSize <= 0.
func NewLRU[K comparable, V any](opt Options[K, V]) *LRU[K, V] {
	opt = opt.withDefaults()
	c := &LRU[K, V]{
		s:      newStore(lru.New[K, V](), opt),
		onMiss: opt.OnMiss,
		loader: opt.Loader,
	}
	for k, v := range opt.Seed {
		c.s.set(k, v)
	}
	return c
}

// Set inserts or updates k→v and promotes it to most recent. When the cache
// is at capacity and k is new, the least recently used entry is evicted.
func (c *LRU[K, V]) Set(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.set(k, v)
}

// Get returns the value for k, promoting it to most recent and counting a
// hit. On a miss the miss counter is incremented; with OnMiss configured the
// computed value is inserted as if by Set and returned with ok=true,
// otherwise ok is false.
func (c *LRU[K, V]) Get(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.s.get(k); ok {
		c.hits.Add(1)
		c.s.metrics.Hit()
		return v, true
	}
	c.misses.Add(1)
	c.s.metrics.Miss()
	if c.onMiss == nil {
		var zero V
		return zero, false
	}
	v := c.onMiss(k)
	c.s.set(k, v)
	return v, true
}

// GetDefault returns the value for k (promoting and counting a hit), or def
// on a miss. The miss is counted as both a miss and a soft miss; OnMiss is
// not invoked.
func (c *LRU[K, V]) GetDefault(k K, def V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.s.get(k); ok {
		c.hits.Add(1)
		c.s.metrics.Hit()
		return v
	}
	c.misses.Add(1)
	c.softMisses.Add(1)
	c.s.metrics.Miss()
	c.s.metrics.SoftMiss()
	return def
}

// SetDefault returns the value for k if present (a hit); otherwise inserts
// def and returns it, counting a miss and a soft miss.
func (c *LRU[K, V]) SetDefault(k K, def V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.s.get(k); ok {
		c.hits.Add(1)
		c.s.metrics.Hit()
		return v
	}
	c.misses.Add(1)
	c.softMisses.Add(1)
	c.s.metrics.Miss()
	c.s.metrics.SoftMiss()
	c.s.set(k, def)
	return def
}

// Peek returns the value for k without promoting it and without touching
// any counter.
func (c *LRU[K, V]) Peek(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s.peek(k)
}

// Contains reports whether k is resident, without promotion or counters.
func (c *LRU[K, V]) Contains(k K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.s.peek(k)
	return ok
}

// Delete removes k if present. Counters are untouched.
func (c *LRU[K, V]) Delete(k K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.s.delete(k)
	return ok
}

// Pop removes k and returns its value. Counters are untouched.
func (c *LRU[K, V]) Pop(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s.delete(k)
}

// PopOldest removes and returns the least recently used entry, or None when
// the cache is empty. Not counted as an eviction.
func (c *LRU[K, V]) PopOldest() optional.Value[Entry[K, V]] {
	c.mu.Lock()
	defer c.mu.Unlock()

	k, v, ok := c.s.oldest()
	if !ok {
		return optional.None[Entry[K, V]]()
	}
	c.s.delete(k)
	return optional.Some(Entry[K, V]{Key: k, Value: v})
}

// Keys returns all resident keys from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s.keys()
}

// Len returns the number of resident entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s.len
}

// MaxSize returns the configured capacity.
func (c *LRU[K, V]) MaxSize() int { return c.s.maxSize }

// Clear removes all entries and reinitializes the sentinel root.
// Counters keep their values.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.clear()
}

// HitCount returns the number of Get-family calls that found their key.
func (c *LRU[K, V]) HitCount() int64 { return c.hits.Load() }

// MissCount returns the number of Get-family calls that did not find their
// key. Soft misses are included.
func (c *LRU[K, V]) MissCount() int64 { return c.misses.Load() }

// SoftMissCount returns the number of misses resolved by a caller-supplied
// default (GetDefault, SetDefault) rather than a failed lookup.
func (c *LRU[K, V]) SoftMissCount() int64 { return c.softMisses.Load() }

// GetOrLoad returns the value for k, loading it via Options.Loader on miss.
// Concurrent loads for the same key are coalesced (singleflight), so the
// Loader runs at most once per in-flight key. If no Loader was configured,
// ErrNoLoader is returned.
func (c *LRU[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	// Fast path.
	if v, ok := c.Get(k); ok {
		return v, nil
	}
	if c.loader == nil {
		var zero V
		return zero, ErrNoLoader
	}

	return c.sf.Do(ctx, k, func() (V, error) {
		// Double-check after flight join.
		if v, ok := c.Get(k); ok {
			return v, nil
		}
		v, err := c.loader(ctx, k)
		if err == nil {
			c.Set(k, v)
		}
		return v, err
	})
}
