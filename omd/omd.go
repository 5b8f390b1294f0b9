// Package omd provides an insertion-ordered dictionary that stores multiple
// values per key.
//
// Dict behaves as a superset of a single-valued ordered map: the plain
// accessors (Get, Set, Delete, Items) collapse each key to its most recently
// added value, while the Add/GetAll/ItemsMulti family exposes every stored
// pair in full insertion order. Adding is non-destructive; only Set and the
// Pop/Delete family remove data.
//
// Internally the Dict keeps a map from key to its nodes plus one circular
// doubly linked list threaded through all nodes and anchored by a sentinel
// root. The list encodes global insertion order; each key's node slice is
// ordered oldest first. Single adds and removals are O(1); removing a key is
// proportional to the number of values it holds.
//
// Dict is not safe for concurrent use; callers that share one across
// goroutines must synchronize externally.
package omd

import (
	"fmt"
	"strings"

	"github.com/dkorovin/ordkit/optional"
)

// Pair is a single key/value item of a Dict.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// entry is a link in the circular list. root.next is the oldest pair,
// root.prev the newest; an empty list has root linked to itself.
type entry[K comparable, V any] struct {
	prev, next *entry[K, V]
	key        K
	val        V
}

// Dict is an insertion-ordered multi-value dictionary.
// The zero value is not usable; construct with New or a From* function.
type Dict[K comparable, V any] struct {
	m     map[K][]*entry[K, V] // per-key nodes, oldest first
	root  *entry[K, V]         // sentinel anchoring the circular list
	total int                  // number of stored pairs across all keys
}

// New returns an empty Dict.
func New[K comparable, V any]() *Dict[K, V] {
	d := &Dict[K, V]{m: make(map[K][]*entry[K, V])}
	r := &entry[K, V]{}
	r.prev, r.next = r, r
	d.root = r
	return d
}

// FromPairs returns a Dict holding every pair in order. Duplicate keys are
// preserved, exactly as if each pair were passed to Add.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) *Dict[K, V] {
	d := New[K, V]()
	for _, p := range pairs {
		d.Add(p.Key, p.Value)
	}
	return d
}

// FromMap returns a Dict with one value per key of m. The insertion order is
// unspecified, matching Go map iteration.
func FromMap[K comparable, V any](m map[K]V) *Dict[K, V] {
	d := New[K, V]()
	for k, v := range m {
		d.Add(k, v)
	}
	return d
}

// FromDict returns an independent copy of other: same pair sequence, fresh
// nodes, no shared link structure.
func FromDict[K comparable, V any](other *Dict[K, V]) *Dict[K, V] {
	d := New[K, V]()
	d.UpdateExtend(other)
	return d
}

// FromKeys returns a Dict with every key in keys mapped to def.
func FromKeys[K comparable, V any](keys []K, def V) *Dict[K, V] {
	d := New[K, V]()
	for _, k := range keys {
		d.Add(k, def)
	}
	return d
}

// ---- list plumbing ----

// insert links a fresh node at the newest end and records it under its key.
func (d *Dict[K, V]) insert(k K, v V) {
	e := &entry[K, V]{key: k, val: v}
	last := d.root.prev
	e.prev, e.next = last, d.root
	last.next = e
	d.root.prev = e
	d.m[k] = append(d.m[k], e)
	d.total++
}

// unlink splices a node out of the list. Map bookkeeping is the caller's job.
func (d *Dict[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
	d.total--
}

// removeAll unlinks every node under k and drops the key.
func (d *Dict[K, V]) removeAll(k K) {
	for _, e := range d.m[k] {
		d.unlink(e)
	}
	delete(d.m, k)
}

// removeLast unlinks only the newest node under k, dropping the key when
// that was its last value.
func (d *Dict[K, V]) removeLast(k K) (V, bool) {
	es := d.m[k]
	if len(es) == 0 {
		var zero V
		return zero, false
	}
	e := es[len(es)-1]
	d.unlink(e)
	if len(es) == 1 {
		delete(d.m, k)
	} else {
		d.m[k] = es[:len(es)-1]
	}
	return e.val, true
}

// ---- mutation ----

// Add appends value under key, preserving any values already stored there.
func (d *Dict[K, V]) Add(key K, value V) {
	d.insert(key, value)
}

// AddList appends each value under key in order, preserving existing values.
func (d *Dict[K, V]) AddList(key K, values ...V) {
	for _, v := range values {
		d.insert(key, v)
	}
}

// Set replaces all values under key with the single given value, matching
// plain-map assignment. Use Add to keep existing values.
func (d *Dict[K, V]) Set(key K, value V) {
	if _, ok := d.m[key]; ok {
		d.removeAll(key)
	}
	d.insert(key, value)
}

// SetDefault returns the current value for key, inserting and returning def
// when the key is absent.
func (d *Dict[K, V]) SetDefault(key K, def V) V {
	if v, ok := d.Get(key); ok {
		return v
	}
	d.insert(key, def)
	return def
}

// Delete removes all values under key, reporting whether any were present.
func (d *Dict[K, V]) Delete(key K) bool {
	if _, ok := d.m[key]; !ok {
		return false
	}
	d.removeAll(key)
	return true
}

// Pop removes all values under key and returns the most recently added one.
func (d *Dict[K, V]) Pop(key K) (V, bool) {
	es, ok := d.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	v := es[len(es)-1].val
	d.removeAll(key)
	return v, true
}

// PopAll removes all values under key and returns them oldest first.
func (d *Dict[K, V]) PopAll(key K) ([]V, bool) {
	es, ok := d.m[key]
	if !ok {
		return nil, false
	}
	vs := make([]V, len(es))
	for i, e := range es {
		vs[i] = e.val
	}
	d.removeAll(key)
	return vs, true
}

// PopLast removes and returns only the most recently added value under key.
// If that was the key's last value, the key is removed entirely.
func (d *Dict[K, V]) PopLast(key K) (V, bool) {
	return d.removeLast(key)
}

// PopNewest removes and returns the globally newest pair, or None when the
// Dict is empty.
func (d *Dict[K, V]) PopNewest() optional.Value[Pair[K, V]] {
	if d.total == 0 {
		return optional.None[Pair[K, V]]()
	}
	k := d.root.prev.key
	v, _ := d.removeLast(k)
	return optional.Some(Pair[K, V]{Key: k, Value: v})
}

// Clear removes everything, reinitializing the sentinel.
func (d *Dict[K, V]) Clear() {
	d.m = make(map[K][]*entry[K, V])
	d.root.prev, d.root.next = d.root, d.root
	d.total = 0
}

// ---- lookup ----

// Get returns the most recently added value under key.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	es, ok := d.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	return es[len(es)-1].val, true
}

// GetDefault returns the most recently added value under key, or def when
// the key is absent.
func (d *Dict[K, V]) GetDefault(key K, def V) V {
	if v, ok := d.Get(key); ok {
		return v
	}
	return def
}

// GetAll returns a copy of all values under key, oldest first, or nil when
// the key is absent. Mutating the returned slice does not affect the Dict.
func (d *Dict[K, V]) GetAll(key K) []V {
	es, ok := d.m[key]
	if !ok {
		return nil
	}
	vs := make([]V, len(es))
	for i, e := range es {
		vs[i] = e.val
	}
	return vs
}

// Contains reports whether key holds at least one value.
func (d *Dict[K, V]) Contains(key K) bool {
	_, ok := d.m[key]
	return ok
}

// Len returns the number of unique keys.
func (d *Dict[K, V]) Len() int { return len(d.m) }

// Total returns the number of stored pairs, counting duplicates.
func (d *Dict[K, V]) Total() int { return d.total }

// Copy returns an independent copy with the same pair sequence.
func (d *Dict[K, V]) Copy() *Dict[K, V] { return FromDict(d) }

// ---- bulk updates ----

// Update overwrites the receiver's entries per key in other: every key
// present in other has its values fully replaced by all of other's values
// for that key, appended in other's insertion order. Keys absent from other
// are untouched. Updating from itself is a no-op.
func (d *Dict[K, V]) Update(other *Dict[K, V]) {
	if other == d {
		return
	}
	for k := range other.m {
		if _, ok := d.m[k]; ok {
			d.removeAll(k)
		}
	}
	for e := other.root.next; e != other.root; e = e.next {
		d.insert(e.key, e.val)
	}
}

// UpdateMap overwrites the receiver's value for each key of m, as Set does.
// Application order is unspecified, matching Go map iteration.
func (d *Dict[K, V]) UpdateMap(m map[K]V) {
	for k, v := range m {
		d.Set(k, v)
	}
}

// UpdateExtend appends every pair of other in its insertion order, never
// overwriting existing values. Extending from itself appends the collapsed
// snapshot of each key.
func (d *Dict[K, V]) UpdateExtend(other *Dict[K, V]) {
	if other == d {
		for _, p := range d.Items() {
			d.insert(p.Key, p.Value)
		}
		return
	}
	for e := other.root.next; e != other.root; e = e.next {
		d.insert(e.key, e.val)
	}
}

// ExtendPairs appends every pair in order, never overwriting.
func (d *Dict[K, V]) ExtendPairs(pairs []Pair[K, V]) {
	for _, p := range pairs {
		d.insert(p.Key, p.Value)
	}
}

// String renders the full pair sequence in insertion order.
func (d *Dict[K, V]) String() string {
	var b strings.Builder
	b.WriteString("Dict[")
	for e := d.root.next; e != d.root; e = e.next {
		if e != d.root.next {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", e.key, e.val)
	}
	b.WriteByte(']')
	return b.String()
}
