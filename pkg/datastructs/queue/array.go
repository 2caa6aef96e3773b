package queue

import (
	"iter"

	"github.com/huynhanx03/go-collections/pkg/common/apperr"
	"github.com/huynhanx03/go-collections/pkg/datastructs/internal/buffer"
)

const component = "queue"

// ArrayQueue is a FIFO queue backed by a circular slice. The k-th item from
// the front lives in slot (head+k) mod Cap(). Every operation takes amortized
// constant time; a reallocation moves the items back to slots [0, Len()).
//
// The zero value is an empty queue ready to use.
// It is NOT thread-safe.
type ArrayQueue[T any] struct {
	buf  buffer.Growable[T]
	head int // 0 <= head < buf.Cap(), or 0 while buf has no capacity
	n    int // 0 <= n <= buf.Cap()
}

// NewArray returns an empty queue with capacity 1.
func NewArray[T any]() *ArrayQueue[T] {
	return &ArrayQueue[T]{buf: buffer.New[T]()}
}

// WithMaxCapacity sets a hard limit on the number of slots. Enqueueing beyond
// it fails with apperr.ErrAllocationFailure. A limit <= 0 removes it.
func (q *ArrayQueue[T]) WithMaxCapacity(max int) *ArrayQueue[T] {
	q.buf.WithMaxLimit(max)
	return q
}

// OnResize registers fn to be called with the old and new capacity after the
// backing slice is reallocated.
func (q *ArrayQueue[T]) OnResize(fn func(from, to int)) *ArrayQueue[T] {
	q.buf.OnResize(fn)
	return q
}

// Len returns the number of items in the queue.
func (q *ArrayQueue[T]) Len() int {
	return q.n
}

// Cap returns the number of allocated slots.
func (q *ArrayQueue[T]) Cap() int {
	return q.buf.Cap()
}

// IsEmpty reports whether the queue holds no items.
func (q *ArrayQueue[T]) IsEmpty() bool {
	return q.n == 0
}

// Enqueue adds x to the back of the queue, doubling the capacity when full.
func (q *ArrayQueue[T]) Enqueue(x T) error {
	moved, err := q.buf.Reserve(q.head, q.n)
	if err != nil {
		return err
	}
	if moved {
		q.head = 0
	}

	q.buf.Data()[q.buf.Index(q.head, q.n)] = x
	q.n++
	return nil
}

// Dequeue removes and returns the item at the front of the queue. It fails
// with apperr.ErrEmptyCollection if the queue is empty.
func (q *ArrayQueue[T]) Dequeue() (T, error) {
	if q.n == 0 {
		var zero T
		return zero, apperr.EmptyCollection(component, "Dequeue")
	}
	return q.dequeue(), nil
}

// TryDequeue removes and returns the item at the front of the queue, or
// returns (zero, false) if the queue is empty.
func (q *ArrayQueue[T]) TryDequeue() (T, bool) {
	if q.n == 0 {
		var zero T
		return zero, false
	}
	return q.dequeue(), true
}

// dequeue assumes q.n > 0.
func (q *ArrayQueue[T]) dequeue() T {
	data := q.buf.Data()
	x := data[q.head]

	var zero T
	data[q.head] = zero // release the reference
	q.head = q.buf.Index(q.head, 1)
	q.n--

	if q.buf.Shrink(q.head, q.n) {
		q.head = 0
	}
	return x
}

// Peek returns the item at the front of the queue without removing it.
func (q *ArrayQueue[T]) Peek() (T, bool) {
	if q.n == 0 {
		var zero T
		return zero, false
	}
	return q.buf.Data()[q.head], true
}

// Clear removes all items and releases the backing slots.
func (q *ArrayQueue[T]) Clear() {
	q.buf.Reset()
	q.head = 0
	q.n = 0
}

// All yields the items from front to back. Each call starts a new pass.
// Mutating the queue during the pass is not supported.
func (q *ArrayQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := 0; k < q.n; k++ {
			if !yield(q.buf.Data()[q.buf.Index(q.head, k)]) {
				return
			}
		}
	}
}
