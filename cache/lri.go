package cache

import (
	"github.com/dkorovin/ordkit/optional"
	"github.com/dkorovin/ordkit/policy/fifo"
)

// LRI is a bounded key-value store that evicts the least recently *inserted*
// entry when full. Reads never reorder, which makes the LRI cheaper than the
// LRU; writes always count as insertions, so a Set on an existing key
// refreshes its slot. It carries no lookup counters.
//
// LRI is not safe for concurrent use. Callers needing thread-safety should
// use LRU or add external locking.
type LRI[K comparable, V any] struct {
	s      *store[K, V]
	onMiss func(K) V
}

// NewLRI constructs an LRI cache. Panics if opt.MaxSize <= 0.
// Options.Loader is ignored; use LRU for coalesced loading.
func NewLRI[K comparable, V any](opt Options[K, V]) *LRI[K, V] {
	opt = opt.withDefaults()
	c := &LRI[K, V]{
		s:      newStore(fifo.New[K, V](), opt),
		onMiss: opt.OnMiss,
	}
	for k, v := range opt.Seed {
		c.s.set(k, v)
	}
	return c
}

// Set inserts or updates k→v. Either way the key joins the back of the
// insertion queue, evicting the oldest inserted entry when over capacity;
// re-setting an existing key refreshes its slot.
func (c *LRI[K, V]) Set(k K, v V) { c.s.set(k, v) }

// Get returns the value for k without affecting eviction order. On a miss
// with OnMiss configured, the computed value is inserted as if by Set (the
// size bound still holds) and returned with ok=true.
func (c *LRI[K, V]) Get(k K) (V, bool) {
	if v, ok := c.s.get(k); ok {
		c.s.metrics.Hit()
		return v, true
	}
	c.s.metrics.Miss()
	if c.onMiss == nil {
		var zero V
		return zero, false
	}
	v := c.onMiss(k)
	c.s.set(k, v)
	return v, true
}

// GetDefault returns the value for k, or def on a miss. OnMiss is not invoked.
func (c *LRI[K, V]) GetDefault(k K, def V) V {
	if v, ok := c.s.get(k); ok {
		c.s.metrics.Hit()
		return v
	}
	c.s.metrics.Miss()
	c.s.metrics.SoftMiss()
	return def
}

// SetDefault returns the value for k if present; otherwise inserts def and
// returns it.
func (c *LRI[K, V]) SetDefault(k K, def V) V {
	if v, ok := c.s.get(k); ok {
		c.s.metrics.Hit()
		return v
	}
	c.s.metrics.Miss()
	c.s.metrics.SoftMiss()
	c.s.set(k, def)
	return def
}

// Peek is Get without the OnMiss insert-through (neither one reorders:
// reads never refresh a slot).
func (c *LRI[K, V]) Peek(k K) (V, bool) { return c.s.peek(k) }

// Contains reports whether k is resident.
func (c *LRI[K, V]) Contains(k K) bool {
	_, ok := c.s.peek(k)
	return ok
}

// Delete removes k if present.
func (c *LRI[K, V]) Delete(k K) bool {
	_, ok := c.s.delete(k)
	return ok
}

// Pop removes k and returns its value.
func (c *LRI[K, V]) Pop(k K) (V, bool) { return c.s.delete(k) }

// PopOldest removes and returns the oldest inserted entry, or None when the
// cache is empty. Not counted as an eviction.
func (c *LRI[K, V]) PopOldest() optional.Value[Entry[K, V]] {
	k, v, ok := c.s.oldest()
	if !ok {
		return optional.None[Entry[K, V]]()
	}
	c.s.delete(k)
	return optional.Some(Entry[K, V]{Key: k, Value: v})
}

// Keys returns all resident keys from oldest to newest inserted.
func (c *LRI[K, V]) Keys() []K { return c.s.keys() }

// Len returns the number of resident entries.
func (c *LRI[K, V]) Len() int { return c.s.len }

// MaxSize returns the configured capacity.
func (c *LRI[K, V]) MaxSize() int { return c.s.maxSize }

// Clear removes all entries and reinitializes the sentinel root.
func (c *LRI[K, V]) Clear() { c.s.clear() }
