package cache

import "context"

// Options configures an LRU or LRI cache. MaxSize is the only required
// field; everything else has a safe zero value.
type Options[K comparable, V any] struct {
	// MaxSize is the entry count limit. Must be > 0; constructors panic
	// otherwise.
	MaxSize int

	// OnMiss, when non-nil, turns misses into insert-throughs: a failed
	// lookup computes OnMiss(k), stores the result as if by Set, and returns
	// it. The miss is still counted. OnMiss runs synchronously on the
	// caller's goroutine; for LRU it runs with the cache lock held, so it
	// must not call back into the cache.
	OnMiss func(k K) V

	// Loader fetches a value on miss for LRU.GetOrLoad. Unlike OnMiss it
	// receives a context, may fail, and concurrent loads for the same key
	// are coalesced. Ignored by LRI.
	Loader func(ctx context.Context, k K) (V, error)

	// OnEvict is called for every capacity eviction, not for explicit
	// Delete/Pop. For LRU it runs under the cache lock; keep it lightweight.
	OnEvict func(k K, v V)

	// Metrics receives hit/miss/eviction/size signals. Nil => NoopMetrics.
	Metrics Metrics

	// Seed bulk-inserts initial entries at construction, in unspecified
	// order. If len(Seed) exceeds MaxSize the overflow is evicted like any
	// other insert.
	Seed map[K]V
}

// Entry is a key/value snapshot returned by PopOldest.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// withDefaults fills in the default Metrics and validates MaxSize.
func (o Options[K, V]) withDefaults() Options[K, V] {
	if o.MaxSize <= 0 {
		panic("cache: MaxSize must be > 0")
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
	return o
}
