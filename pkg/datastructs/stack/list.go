// Package stack provides ArrayStack, a growable array-backed list that is
// used as a stack through Push and Pop.
package stack

import "iter"

// List is the capability set of a positional sequence.
type List[T any] interface {
	// Len returns the number of elements.
	Len() int

	// Get returns the element at index i.
	Get(i int) (T, error)

	// Set replaces the element at index i and returns the previous one.
	Set(i int, x T) (T, error)

	// InsertAt inserts x at index i, shifting later elements right.
	// i == Len() appends.
	InsertAt(i int, x T) error

	// RemoveAt removes and returns the element at index i, shifting later
	// elements left.
	RemoveAt(i int) (T, error)

	// All yields the elements in index order.
	All() iter.Seq[T]
}
