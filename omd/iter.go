package omd

import "iter"

// All yields every stored pair in true insertion order, duplicates included.
// The Dict must not be mutated during iteration.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := d.root.next; e != d.root; e = e.next {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Collapsed yields one pair per unique key in order of first appearance,
// carrying the key's most recently added value.
func (d *Dict[K, V]) Collapsed() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seen := make(map[K]struct{}, len(d.m))
		for e := d.root.next; e != d.root; e = e.next {
			if _, ok := seen[e.key]; ok {
				continue
			}
			seen[e.key] = struct{}{}
			es := d.m[e.key]
			if !yield(e.key, es[len(es)-1].val) {
				return
			}
		}
	}
}

// Backward yields unique keys in reverse of their first appearance, i.e. the
// exact reverse of Keys. The walk runs from the newest node backwards and
// emits a key once all of its nodes have been passed.
func (d *Dict[K, V]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		remaining := make(map[K]int, len(d.m))
		for e := d.root.prev; e != d.root; e = e.prev {
			remaining[e.key]++
			if remaining[e.key] == len(d.m[e.key]) {
				if !yield(e.key) {
					return
				}
			}
		}
	}
}

// Keys returns unique keys in order of first appearance.
func (d *Dict[K, V]) Keys() []K {
	ks := make([]K, 0, len(d.m))
	for k := range d.Collapsed() {
		ks = append(ks, k)
	}
	return ks
}

// KeysMulti returns the key of every stored pair in insertion order,
// duplicates included.
func (d *Dict[K, V]) KeysMulti() []K {
	ks := make([]K, 0, d.total)
	for e := d.root.next; e != d.root; e = e.next {
		ks = append(ks, e.key)
	}
	return ks
}

// Values returns the collapsed value of each unique key, in key order.
func (d *Dict[K, V]) Values() []V {
	vs := make([]V, 0, len(d.m))
	for _, v := range d.Collapsed() {
		vs = append(vs, v)
	}
	return vs
}

// ValuesMulti returns every stored value in insertion order.
func (d *Dict[K, V]) ValuesMulti() []V {
	vs := make([]V, 0, d.total)
	for e := d.root.next; e != d.root; e = e.next {
		vs = append(vs, e.val)
	}
	return vs
}

// Items returns the collapsed pair of each unique key, in key order.
func (d *Dict[K, V]) Items() []Pair[K, V] {
	ps := make([]Pair[K, V], 0, len(d.m))
	for k, v := range d.Collapsed() {
		ps = append(ps, Pair[K, V]{Key: k, Value: v})
	}
	return ps
}

// ItemsMulti returns every stored pair in insertion order.
func (d *Dict[K, V]) ItemsMulti() []Pair[K, V] {
	ps := make([]Pair[K, V], 0, d.total)
	for e := d.root.next; e != d.root; e = e.next {
		ps = append(ps, Pair[K, V]{Key: e.key, Value: e.val})
	}
	return ps
}

// ToMap returns a plain map of the collapsed view.
func (d *Dict[K, V]) ToMap() map[K]V {
	m := make(map[K]V, len(d.m))
	for k, es := range d.m {
		m[k] = es[len(es)-1].val
	}
	return m
}

// ToMultiMap returns a plain map of all values per key, oldest first.
// The value slices are copies and safe to mutate.
func (d *Dict[K, V]) ToMultiMap() map[K][]V {
	m := make(map[K][]V, len(d.m))
	for k := range d.m {
		m[k] = d.GetAll(k)
	}
	return m
}
