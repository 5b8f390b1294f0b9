// Package policy defines the pluggable ordering strategies used by the
// bounded caches: LRU (promote on every access) and FIFO (strict insertion
// order). Policies never own storage; they manipulate the cache's intrusive
// list exclusively through Hooks.
package policy

// Node is the minimal contract a cache entry must satisfy for a policy.
// It provides read-only access to the key and a pointer to the value.
// The pointer allows in-place updates without re-linking the node.
type Node[K comparable, V any] interface {
	Key() K
	Value() *V
}

// Hooks expose O(1) list operations a policy can use to manipulate the
// cache's circular newest/oldest list. Implementations are provided by the
// cache core.
//
// Concurrency: for a locked cache (LRU) all hook calls happen under the
// cache lock; for an unlocked one (LRI) they happen on the caller's
// goroutine. Hooks manage only the list; the cache owns the key->node map.
type Hooks[K comparable, V any] interface {
	// MoveToFront promotes the node to the most-recent end.
	MoveToFront(Node[K, V])
	// PushFront inserts the node at the most-recent end (used on admission).
	PushFront(Node[K, V])
	// Remove detaches the node from the list (map bookkeeping is done by the cache).
	Remove(Node[K, V])
	// Back returns the current eviction candidate (or nil if empty).
	Back() Node[K, V]
	// Len returns the number of resident nodes.
	Len() int
}

// ListPolicy is a policy instance bound to one cache's hooks.
//
// Semantics:
//   - OnAdd may return an eviction candidate. The cache will evict that node
//     and subsequently call OnRemove for it.
//   - OnGet/OnUpdate reorder the node (or not) according to the strategy.
//   - OnRemove is a notification to update policy-internal state; the cache
//     performs the actual deletion.
type ListPolicy[K comparable, V any] interface {
	OnAdd(Node[K, V]) (evict Node[K, V])
	OnGet(Node[K, V])
	OnUpdate(Node[K, V])
	OnRemove(Node[K, V])
}

// Policy is a factory that creates policy instances bound to a particular
// cache's hooks.
type Policy[K comparable, V any] interface {
	New(Hooks[K, V]) ListPolicy[K, V]
}
