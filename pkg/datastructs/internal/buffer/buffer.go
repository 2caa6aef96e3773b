package buffer

import (
	"fmt"

	"github.com/huynhanx03/go-collections/pkg/common/apperr"
)

// Growable is the contiguous backing store shared by the array containers.
// It owns exactly one slice whose length is its capacity, and it knows
// nothing about which slots are live: callers pass the position (head) and
// count (n) of their elements whenever a resize may re-linearize them.
//
// The zero value has capacity 0 and grows on the first Reserve.
// It is NOT thread-safe.
type Growable[T any] struct {
	data     []T // len(data) == capacity
	max      int // maximum allowed capacity, 0 when unbounded
	onResize func(from, to int)
}

// New returns a Growable with capacity 1.
func New[T any]() Growable[T] {
	return Growable[T]{data: make([]T, minCapacity)}
}

// WithMaxLimit sets the hard limit for buffer growth. A limit <= 0 removes it.
// The current capacity is left as is.
func (g *Growable[T]) WithMaxLimit(max int) {
	if max < 0 {
		max = 0
	}
	g.max = max
}

// MaxLimit returns the hard capacity limit, or 0 if there is none.
func (g *Growable[T]) MaxLimit() int {
	return g.max
}

// OnResize registers fn to be called after every completed reallocation.
func (g *Growable[T]) OnResize(fn func(from, to int)) {
	g.onResize = fn
}

// Cap returns the number of allocated slots.
func (g *Growable[T]) Cap() int {
	return len(g.data)
}

// Data returns the backing slots. The slice is valid until the next Reserve,
// Shrink or Reset.
func (g *Growable[T]) Data() []T {
	return g.data
}

// Index returns the physical slot of logical position k for a ring whose
// first element sits at head. It panics if the buffer has no capacity.
func (g *Growable[T]) Index(head, k int) int {
	if len(g.data) == 0 {
		panic("buffer: index into zero-capacity buffer")
	}
	return wrapIndex(head, k, len(g.data))
}

// Reserve ensures there is room for one more element beyond the n elements
// starting at head. If the buffer is reallocated the elements are moved to
// slots [0, n) and moved is true; the caller must then reset its head to 0.
// On error the buffer is unchanged.
func (g *Growable[T]) Reserve(head, n int) (moved bool, err error) {
	newCap, err := growTarget(n, len(g.data), g.max)
	if err != nil {
		return false, err
	}
	if newCap == len(g.data) {
		return false, nil
	}
	if err := g.resize(head, n, newCap); err != nil {
		return false, err
	}
	return true, nil
}

// Shrink reallocates the buffer down to twice n (at least 1 slot) once it is
// at most a third full, moving the n elements starting at head to slots
// [0, n). It reports whether the buffer was replaced. A failed allocation
// keeps the current, larger buffer.
func (g *Growable[T]) Shrink(head, n int) bool {
	newCap, ok := shrinkTarget(n, len(g.data))
	if !ok {
		return false
	}
	return g.resize(head, n, newCap) == nil
}

// Reset releases the backing slots and returns to capacity 1. The limit and
// resize observer are kept.
func (g *Growable[T]) Reset() {
	from := len(g.data)
	g.data = make([]T, minCapacity)
	if g.onResize != nil && from != minCapacity {
		g.onResize(from, minCapacity)
	}
}

// resize swaps in a new buffer of capacity slots holding the n elements that
// start at head, in logical order. The old buffer is only dropped once the
// new one is fully populated.
func (g *Growable[T]) resize(head, n, capacity int) error {
	b, err := alloc[T](capacity)
	if err != nil {
		return err
	}
	Relinearize(b, g.data, head, n)

	from := len(g.data)
	g.data = b
	if g.onResize != nil {
		g.onResize(from, capacity)
	}
	return nil
}

// alloc obtains capacity zeroed slots. A runtime refusal of the make (length
// out of range) is reported as an allocation failure instead of panicking.
func alloc[T any](capacity int) (b []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = apperr.AllocationFailure(component, capacity, fmt.Errorf("%v", r))
		}
	}()
	return make([]T, capacity), nil
}
