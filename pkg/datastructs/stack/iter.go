package stack

import "iter"

// All yields the elements from index 0 to Len()-1. Each call starts a new
// pass. Mutating the stack during the pass is not supported.
func (s *ArrayStack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(s.buf.Data()[i]) {
				return
			}
		}
	}
}

// Backward yields the elements in pop order, from Len()-1 down to 0.
func (s *ArrayStack[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.n - 1; i >= 0; i-- {
			if !yield(s.buf.Data()[i]) {
				return
			}
		}
	}
}
