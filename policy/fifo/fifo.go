// Package fifo implements the least-recently-inserted ordering policy.
//
// Entries are ordered by insertion time: reads never reorder the list, but a
// Set on an existing key counts as a fresh insertion and moves the entry to
// the most-recent end. The eviction candidate is always the least recently
// *inserted* entry. This is the backing policy for the LRI cache.
package fifo

import "github.com/dkorovin/ordkit/policy"

type fifo[K comparable, V any] struct {
	h policy.Hooks[K, V]
}

type factory[K comparable, V any] struct{}

// New returns a Policy factory that constructs FIFO instances.
func New[K comparable, V any]() policy.Policy[K, V] { return factory[K, V]{} }

func (factory[K, V]) New(h policy.Hooks[K, V]) policy.ListPolicy[K, V] {
	return &fifo[K, V]{h: h}
}

// OnAdd places the new entry at the most-recent end; insertion is the only
// event that establishes order.
func (p *fifo[K, V]) OnAdd(n policy.Node[K, V]) (evict policy.Node[K, V]) {
	p.h.PushFront(n)
	return nil
}

// OnGet never reorders: reads do not refresh an entry's lifetime.
func (p *fifo[K, V]) OnGet(_ policy.Node[K, V]) {}

// OnUpdate re-inserts: writing an existing key refreshes its insertion slot,
// exactly as deleting and re-adding it would.
func (p *fifo[K, V]) OnUpdate(n policy.Node[K, V]) { p.h.MoveToFront(n) }

// OnRemove is a no-op.
func (p *fifo[K, V]) OnRemove(_ policy.Node[K, V]) {}
