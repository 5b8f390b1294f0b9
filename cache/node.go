package cache

// node is a link in the circular doubly linked list owned by a store.
// The sentinel root holds no data; root.prev is the most recent entry and
// root.next the eviction candidate.
type node[K comparable, V any] struct {
	key K
	val V

	prev *node[K, V]
	next *node[K, V]
}

// Key returns the node key (part of the policy.Node interface).
func (n *node[K, V]) Key() K { return n.key }

// Value returns a pointer to the stored value (part of the policy.Node
// interface). For a locked cache the pointer must only be used while the
// cache lock is held.
func (n *node[K, V]) Value() *V { return &n.val }
