package cache

import "github.com/dkorovin/ordkit/policy"

// store is the unsynchronized core shared by LRU and LRI: a key->node map
// plus a circular doubly linked list anchored by a sentinel root. The active
// policy decides how (and whether) entries are reordered; the store enforces
// the size bound by trimming from the back.
//
// Invariants:
//  1. root never holds data; root.prev.next == root and root.next.prev == root
//     always, even when empty (root linked to itself).
//  2. every node reachable from the list is in the map exactly once, and
//     vice versa.
//  3. len never exceeds maxSize after a mutating call returns.
type store[K comparable, V any] struct {
	m    map[K]*node[K, V]
	root *node[K, V]
	len  int

	maxSize int
	pol     policy.ListPolicy[K, V]
	onEvict func(K, V)
	metrics Metrics
}

func newStore[K comparable, V any](pol policy.Policy[K, V], opt Options[K, V]) *store[K, V] {
	s := &store[K, V]{
		m:       make(map[K]*node[K, V], opt.MaxSize),
		maxSize: opt.MaxSize,
		onEvict: opt.OnEvict,
		metrics: opt.Metrics,
	}
	s.root = &node[K, V]{}
	s.root.prev, s.root.next = s.root, s.root
	s.pol = pol.New(storeHooks[K, V]{s: s})
	return s
}

// set inserts or updates k→v, letting the policy place the node, then trims
// to capacity.
func (s *store[K, V]) set(k K, v V) {
	if n, ok := s.m[k]; ok {
		n.val = v
		s.pol.OnUpdate(n)
		s.trim()
		return
	}
	n := &node[K, V]{key: k, val: v}
	s.m[k] = n
	if ev := s.pol.OnAdd(n); ev != nil {
		s.evict(ev.(*node[K, V]))
	}
	s.trim()
}

// get returns the value for k, notifying the policy on a hit so it can
// reorder. No miss accounting happens here.
func (s *store[K, V]) get(k K) (V, bool) {
	n, ok := s.m[k]
	if !ok {
		var zero V
		return zero, false
	}
	s.pol.OnGet(n)
	return n.val, true
}

// peek returns the value for k without notifying the policy.
func (s *store[K, V]) peek(k K) (V, bool) {
	n, ok := s.m[k]
	if !ok {
		var zero V
		return zero, false
	}
	return n.val, true
}

// delete removes k if present. Explicit removal is not an eviction: no
// metrics fire and the OnEvict callback is not invoked.
func (s *store[K, V]) delete(k K) (V, bool) {
	n, ok := s.m[k]
	if !ok {
		var zero V
		return zero, false
	}
	s.pol.OnRemove(n)
	s.unlink(n)
	delete(s.m, k)
	return n.val, true
}

// clear resets to empty, reinitializing the sentinel root.
func (s *store[K, V]) clear() {
	s.m = make(map[K]*node[K, V], s.maxSize)
	s.root.prev, s.root.next = s.root, s.root
	s.len = 0
}

// oldest returns the current eviction candidate without removing it.
func (s *store[K, V]) oldest() (K, V, bool) {
	if n := s.back(); n != nil {
		return n.key, n.val, true
	}
	var zk K
	var zv V
	return zk, zv, false
}

// keys returns all keys from the eviction candidate to the most recent.
func (s *store[K, V]) keys() []K {
	ks := make([]K, 0, s.len)
	for n := s.root.next; n != s.root; n = n.next {
		ks = append(ks, n.key)
	}
	return ks
}

// -------------------- internals --------------------

// pushFront inserts n at the most-recent end in O(1).
func (s *store[K, V]) pushFront(n *node[K, V]) {
	last := s.root.prev
	n.prev, n.next = last, s.root
	last.next = n
	s.root.prev = n
	s.len++
}

// moveToFront promotes n in O(1).
func (s *store[K, V]) moveToFront(n *node[K, V]) {
	if s.root.prev == n {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	last := s.root.prev
	n.prev, n.next = last, s.root
	last.next = n
	s.root.prev = n
}

// unlink splices n out of the list in O(1).
func (s *store[K, V]) unlink(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	s.len--
}

// back returns the eviction candidate, nil when empty.
func (s *store[K, V]) back() *node[K, V] {
	if s.len == 0 {
		return nil
	}
	return s.root.next
}

// evict removes n as a capacity eviction: metrics fire and the OnEvict
// callback runs. The callback is invoked with the cache lock held (if any);
// keep callbacks lightweight.
func (s *store[K, V]) evict(n *node[K, V]) {
	s.pol.OnRemove(n)
	s.unlink(n)
	delete(s.m, n.key)
	s.metrics.Evict()
	if cb := s.onEvict; cb != nil {
		cb(n.key, n.val)
	}
}

// trim evicts from the back until the size bound is satisfied, then reports
// the resident size.
func (s *store[K, V]) trim() {
	for s.len > s.maxSize {
		tail := s.back()
		if tail == nil {
			break
		}
		s.evict(tail)
	}
	s.metrics.Size(s.len)
}

// -------------------- policy hooks --------------------

// storeHooks adapts the store's list operations to policy.Hooks.
type storeHooks[K comparable, V any] struct{ s *store[K, V] }

func (h storeHooks[K, V]) MoveToFront(x policy.Node[K, V]) { h.s.moveToFront(x.(*node[K, V])) }
func (h storeHooks[K, V]) PushFront(x policy.Node[K, V])   { h.s.pushFront(x.(*node[K, V])) }
func (h storeHooks[K, V]) Remove(x policy.Node[K, V]) {
	// Map bookkeeping stays with the store.
	h.s.unlink(x.(*node[K, V]))
}
func (h storeHooks[K, V]) Back() policy.Node[K, V] {
	if n := h.s.back(); n != nil {
		return n
	}
	return nil
}
func (h storeHooks[K, V]) Len() int { return h.s.len }
