package stack

import (
	"github.com/huynhanx03/go-collections/pkg/common/apperr"
	"github.com/huynhanx03/go-collections/pkg/datastructs/internal/buffer"
)

const component = "stack"

// ArrayStack is a list backed by a single slice. Element i lives in slot i.
// Appending and removing the last element take amortized constant time;
// inserting or removing at index i shifts the n-i elements after it.
//
// The zero value is an empty stack ready to use.
// It is NOT thread-safe.
type ArrayStack[T any] struct {
	buf buffer.Growable[T]
	n   int // 0 <= n <= buf.Cap()
}

// New returns an empty stack with capacity 1.
func New[T any]() *ArrayStack[T] {
	return &ArrayStack[T]{buf: buffer.New[T]()}
}

// WithMaxCapacity sets a hard limit on the number of slots. Pushing beyond it
// fails with apperr.ErrAllocationFailure. A limit <= 0 removes it.
func (s *ArrayStack[T]) WithMaxCapacity(max int) *ArrayStack[T] {
	s.buf.WithMaxLimit(max)
	return s
}

// OnResize registers fn to be called with the old and new capacity after the
// backing slice is reallocated.
func (s *ArrayStack[T]) OnResize(fn func(from, to int)) *ArrayStack[T] {
	s.buf.OnResize(fn)
	return s
}

// Len returns the number of elements.
func (s *ArrayStack[T]) Len() int {
	return s.n
}

// Cap returns the number of allocated slots.
func (s *ArrayStack[T]) Cap() int {
	return s.buf.Cap()
}

// IsEmpty reports whether the stack holds no elements.
func (s *ArrayStack[T]) IsEmpty() bool {
	return s.n == 0
}

// Get returns the element at index i.
func (s *ArrayStack[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, apperr.IndexOutOfRange(component, "Get", i, s.n)
	}
	return s.buf.Data()[i], nil
}

// Set replaces the element at index i with x and returns the previous value.
func (s *ArrayStack[T]) Set(i int, x T) (T, error) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, apperr.IndexOutOfRange(component, "Set", i, s.n)
	}
	data := s.buf.Data()
	prev := data[i]
	data[i] = x
	return prev, nil
}

// InsertAt inserts x at index i, which must be in [0, Len()].
func (s *ArrayStack[T]) InsertAt(i int, x T) error {
	if i < 0 || i > s.n {
		return apperr.IndexOutOfRange(component, "InsertAt", i, s.n)
	}
	if _, err := s.buf.Reserve(0, s.n); err != nil {
		return err
	}

	data := s.buf.Data()
	copy(data[i+1:s.n+1], data[i:s.n])
	data[i] = x
	s.n++
	return nil
}

// RemoveAt removes and returns the element at index i.
func (s *ArrayStack[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, apperr.IndexOutOfRange(component, "RemoveAt", i, s.n)
	}
	return s.removeAt(i), nil
}

// removeAt assumes 0 <= i < s.n.
func (s *ArrayStack[T]) removeAt(i int) T {
	data := s.buf.Data()
	x := data[i]
	copy(data[i:s.n-1], data[i+1:s.n])

	var zero T
	data[s.n-1] = zero // release the reference
	s.n--

	s.buf.Shrink(0, s.n)
	return x
}

// Push appends x.
func (s *ArrayStack[T]) Push(x T) error {
	return s.InsertAt(s.n, x)
}

// Pop removes and returns the last element. It fails with
// apperr.ErrEmptyCollection if the stack is empty.
func (s *ArrayStack[T]) Pop() (T, error) {
	if s.n == 0 {
		var zero T
		return zero, apperr.EmptyCollection(component, "Pop")
	}
	return s.removeAt(s.n - 1), nil
}

// Peek returns the last element without removing it.
func (s *ArrayStack[T]) Peek() (T, bool) {
	if s.n == 0 {
		var zero T
		return zero, false
	}
	return s.buf.Data()[s.n-1], true
}

// Clear removes all elements and releases the backing slots.
func (s *ArrayStack[T]) Clear() {
	s.buf.Reset()
	s.n = 0
}

// Contains reports whether x is one of the elements of s.
func Contains[T comparable](s *ArrayStack[T], x T) bool {
	for _, v := range s.buf.Data()[:s.n] {
		if v == x {
			return true
		}
	}
	return false
}
