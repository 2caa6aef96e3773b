package queue

import "iter"

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item to the back of the queue.
	// It only fails if the queue cannot grow.
	Enqueue(item T) error

	// Dequeue removes and returns the item at the front of the queue.
	// Returns apperr.ErrEmptyCollection if the queue is empty.
	Dequeue() (T, error)

	// TryDequeue is Dequeue without the error.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	TryDequeue() (T, bool)

	// Peek returns the item at the front of the queue without removing it.
	Peek() (T, bool)

	// Len returns the number of items in the queue.
	Len() int

	// All yields the items from front to back.
	All() iter.Seq[T]
}
