// Package singleflight coalesces concurrent loads for the same key so the
// load function runs at most once while callers share the result.
package singleflight

import (
	"context"
	"sync"
)

// Group coalesces concurrent calls per key K. The first caller for a key
// becomes the leader and runs fn; followers wait for the shared result.
//
// Publishing (val, err) happens-before close(c.done), so reads after <-done
// observe the final values. Cancelling ctx in a follower unblocks only that
// follower; it does not cancel the leader's fn. If the work itself must be
// cancellable, thread ctx into fn.
type Group[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]*call[V]
}

type call[V any] struct {
	done chan struct{} // closed when val/err are published
	val  V
	err  error
}

// Do runs fn once for the given key. Concurrent calls with the same key wait
// for the shared result. A follower whose ctx is cancelled returns ctx.Err()
// while the leader continues to run fn.
func (g *Group[K, V]) Do(ctx context.Context, key K, fn func() (V, error)) (V, error) {
	g.mu.Lock()
	if g.m == nil {
		g.m = make(map[K]*call[V])
	}
	if c, ok := g.m[key]; ok {
		// In-flight call exists: wait, respecting ctx.
		done := c.done
		g.mu.Unlock()

		select {
		case <-done:
			return c.val, c.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}

	// We are the leader for this key.
	c := &call[V]{done: make(chan struct{})}
	g.m[key] = c
	g.mu.Unlock()

	// Execute fn outside the lock.
	c.val, c.err = fn()
	close(c.done)

	g.mu.Lock()
	delete(g.m, key)
	g.mu.Unlock()

	return c.val, c.err
}
