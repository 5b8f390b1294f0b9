package omd

import "slices"

// Free functions live here because Go methods cannot introduce new type
// parameters (Inverted swaps K and V, Counts maps to int) or extra
// constraints (Equal needs comparable values).

// Equal reports whether a and b hold the same pair sequence under the multi
// view: same length and identical (key, value) pairs in identical order.
func Equal[K, V comparable](a, b *Dict[K, V]) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() || a.total != b.total {
		return false
	}
	be := b.root.next
	for ae := a.root.next; ae != a.root; ae = ae.next {
		if ae.key != be.key || ae.val != be.val {
			return false
		}
		be = be.next
	}
	return true
}

// EqualMap reports whether the collapsed view of d matches m: the same key
// set, with each key's most recent value equal to m's. The multi view is
// not considered.
func EqualMap[K, V comparable](d *Dict[K, V], m map[K]V) bool {
	if d.Len() != len(m) {
		return false
	}
	for k, es := range d.m {
		mv, ok := m[k]
		if !ok || mv != es[len(es)-1].val {
			return false
		}
	}
	return true
}

// Inverted returns a new Dict with keys and values swapped, preserving the
// global insertion order of the swapped pairs. Inverting twice yields a Dict
// whose multi pair sequence equals the original's; when distinct keys share
// a value their pairs group under one inverted key, but no pair or ordering
// is lost.
func Inverted[K, V comparable](d *Dict[K, V]) *Dict[V, K] {
	inv := New[V, K]()
	for e := d.root.next; e != d.root; e = e.next {
		inv.Add(e.val, e.key)
	}
	return inv
}

// Counts returns a Dict mapping each unique key to the number of values
// stored under it, in first-appearance key order.
func Counts[K comparable, V any](d *Dict[K, V]) *Dict[K, int] {
	c := New[K, int]()
	for _, k := range d.Keys() {
		c.Add(k, len(d.m[k]))
	}
	return c
}

// Sorted returns a new Dict with the full pair sequence reordered by cmp
// (stable). Duplicate keys survive; only their positions change.
func Sorted[K comparable, V any](d *Dict[K, V], cmp func(a, b Pair[K, V]) int) *Dict[K, V] {
	items := d.ItemsMulti()
	slices.SortStableFunc(items, cmp)
	return FromPairs(items)
}

// SortedValues returns a copy of d with the same keys in the same slots, but
// with each key's values reordered among that key's own positions by cmp.
// Key order is untouched; only value order within a key changes.
func SortedValues[K comparable, V any](d *Dict[K, V], cmp func(a, b V) int) *Dict[K, V] {
	byKey := make(map[K][]V, len(d.m))
	for k := range d.m {
		vs := d.GetAll(k)
		slices.SortStableFunc(vs, cmp)
		byKey[k] = vs
	}
	ret := New[K, V]()
	next := make(map[K]int, len(d.m))
	for e := d.root.next; e != d.root; e = e.next {
		ret.Add(e.key, byKey[e.key][next[e.key]])
		next[e.key]++
	}
	return ret
}
