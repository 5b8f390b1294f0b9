// Package optional provides a tagged "value or nothing" type.
//
// It stands in for the process-wide "missing" sentinel some dynamic
// languages use to tell "no value" apart from a legitimate zero value.
// A tagged value is safer than an identity-compared singleton: it works
// across packages and goroutines without relying on pointer identity.
package optional

import "fmt"

// Value holds either a T or nothing.
// The zero Value is empty.
type Value[T any] struct {
	v  T
	ok bool
}

// Some returns a Value holding v.
func Some[T any](v T) Value[T] { return Value[T]{v: v, ok: true} }

// None returns an empty Value.
func None[T any]() Value[T] { return Value[T]{} }

// Get returns the held value and whether one is present.
func (o Value[T]) Get() (T, bool) { return o.v, o.ok }

// Present reports whether a value is held.
func (o Value[T]) Present() bool { return o.ok }

// Or returns the held value, or def when empty.
func (o Value[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Must returns the held value and panics when empty.
func (o Value[T]) Must() T {
	if !o.ok {
		panic("optional: no value present")
	}
	return o.v
}

// String implements fmt.Stringer.
func (o Value[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}
