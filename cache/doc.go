// Package cache provides two bounded in-memory key/value stores built on
// the same map-plus-intrusive-list core and differing only in eviction
// policy:
//
//   - LRU evicts the least recently *used* entry. Every successful read or
//     write promotes the entry to most recent. The LRU is safe for
//     concurrent use (one mutex serializes the whole structure) and is
//     instrumented with hit/miss/soft-miss counters.
//
//   - LRI evicts the least recently *inserted* entry. Reads never reorder;
//     every write, including a re-set of an existing key, counts as a fresh
//     insertion. The LRI carries no lock and no counters; it is the cheaper
//     choice for single-goroutine use.
//
// Design
//
//   - Storage: a map[K]*node for lookups plus a circular doubly linked list
//     anchored by a sentinel root. root.prev is the most recent entry,
//     root.next the eviction candidate. All operations are O(1).
//
//   - Policies: ordering is pluggable via the policy package; LRU and FIFO
//     instances are wired by the respective constructors.
//
//   - Misses: Options.OnMiss turns misses into insert-throughs, like a
//     memoizing default factory. LRU additionally offers GetOrLoad with a
//     context-aware Loader and singleflight coalescing of concurrent loads.
//
//   - Metrics: Options.Metrics receives Hit/Miss/SoftMiss/Evict/Size
//     signals; NoopMetrics is the default. A Prometheus adapter lives in
//     metrics/prom. Eviction is expected, silent behavior, never an error.
//
// Basic usage
//
//	c := cache.NewLRU[string, int](cache.Options[string, int]{MaxSize: 128})
//	c.Set("a", 1)
//	if v, ok := c.Get("a"); ok {
//	    _ = v
//	}
//	fmt.Println(c.HitCount(), c.MissCount())
//
// With an on-miss factory
//
//	c := cache.NewLRI[string, []byte](cache.Options[string, []byte]{
//	    MaxSize: 1024,
//	    OnMiss:  func(k string) []byte { return render(k) },
//	})
//	v, _ := c.Get("page") // computed, cached, returned
//
// With GetOrLoad (LRU only)
//
//	c := cache.NewLRU[string, string](cache.Options[string, string]{
//	    MaxSize: 1024,
//	    Loader: func(ctx context.Context, k string) (string, error) {
//	        return fetch(ctx, k)
//	    },
//	})
//	v, err := c.GetOrLoad(ctx, "key")
package cache
