package gollowmap

import "cmp"

// Comparator defines the total order over keys. It returns a negative
// number when a < b, zero when a == b and a positive number when a > b.
type Comparator[V any] func(a V, b V) int

// Returns a comparator backed by the natural order of the key type
func OrderedComparator[K cmp.Ordered]() Comparator[K] {
	return func(a K, b K) int {
		return cmp.Compare(a, b)
	}
}

// Returns a comparator imposing the reverse of this comparator's order
func (c Comparator[V]) Reversed() Comparator[V] {
	return func(a V, b V) int {
		return c(b, a)
	}
}
