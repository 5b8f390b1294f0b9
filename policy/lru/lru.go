// Package lru implements the least-recently-used ordering policy.
package lru

import "github.com/dkorovin/ordkit/policy"

// lru is a classic "move-to-front" policy: every read and every write counts
// as a use. List manipulation is delegated to policy.Hooks.
type lru[K comparable, V any] struct {
	h policy.Hooks[K, V]
}

type factory[K comparable, V any] struct{}

// New returns a Policy factory that constructs LRU instances.
func New[K comparable, V any]() policy.Policy[K, V] { return factory[K, V]{} }

func (factory[K, V]) New(h policy.Hooks[K, V]) policy.ListPolicy[K, V] {
	return &lru[K, V]{h: h}
}

// OnAdd places the new entry at the most-recent end. LRU itself never picks
// eviction victims; the cache trims from the back when over capacity.
func (p *lru[K, V]) OnAdd(n policy.Node[K, V]) (evict policy.Node[K, V]) {
	p.h.PushFront(n)
	return nil
}

// OnGet promotes the entry to the most-recent end.
func (p *lru[K, V]) OnGet(n policy.Node[K, V]) { p.h.MoveToFront(n) }

// OnUpdate promotes the entry (updates count as recent use).
func (p *lru[K, V]) OnUpdate(n policy.Node[K, V]) { p.h.MoveToFront(n) }

// OnRemove is a no-op for pure LRU.
func (p *lru[K, V]) OnRemove(_ policy.Node[K, V]) {}
