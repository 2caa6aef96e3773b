package queue

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/huynhanx03/go-collections/pkg/common/apperr"
)

// Interface compliance check
var _ Queue[int] = (*ArrayQueue[int])(nil)

// all drains q and returns the items in dequeue order.
func all[T any](q *ArrayQueue[T]) []T {
	var got []T
	for {
		x, ok := q.TryDequeue()
		if !ok {
			break
		}
		got = append(got, x)
	}
	return got
}

// checkInvariants verifies count <= capacity, the shrink bound and the head
// range.
func checkInvariants[T any](t *testing.T, q *ArrayQueue[T]) {
	t.Helper()
	if q.Len() > q.Cap() {
		t.Fatalf("Len() = %d > Cap() = %d", q.Len(), q.Cap())
	}
	if q.Len() > 0 && q.Cap() >= 3*q.Len() {
		t.Fatalf("Cap() = %d overprovisioned for Len() = %d", q.Cap(), q.Len())
	}
	if q.Cap() > 0 && (q.head < 0 || q.head >= q.Cap()) {
		t.Fatalf("head = %d outside [0, %d)", q.head, q.Cap())
	}
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewArray(t *testing.T) {
	q := NewArray[int]()
	if q.Cap() != 1 {
		t.Errorf("Cap() = %d, want 1", q.Cap())
	}
	if !q.IsEmpty() {
		t.Error("new queue should be empty")
	}
}

// =============================================================================
// FIFO Tests
// =============================================================================

func TestFIFO(t *testing.T) {
	diff := func(t *testing.T, got, want []int) {
		t.Helper()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%T.TryDequeue() until !ok; diff (-want +got):\n%s", ArrayQueue[int]{}, diff)
		}
	}

	t.Run("disjoint_Enqueue_Dequeue", func(t *testing.T) {
		var q ArrayQueue[int]

		var want []int
		for i := range 5 {
			if err := q.Enqueue(i); err != nil {
				t.Fatalf("Enqueue(%d) error = %v", i, err)
			}
			want = append(want, i)
		}
		diff(t, all(&q), want)
		checkInvariants(t, &q)
	})

	t.Run("interleaved_Enqueue_Dequeue", func(t *testing.T) {
		q := NewArray[int]()

		rng := rand.New(rand.NewPCG(0, 0))

		var got, want []int
		for i := range 1000 {
			if err := q.Enqueue(i); err != nil {
				t.Fatalf("Enqueue(%d) error = %v", i, err)
			}
			want = append(want, i)
			checkInvariants(t, q)

			for rng.IntN(4) == 0 {
				x, err := q.Dequeue()
				if err != nil {
					break
				}
				got = append(got, x)
				checkInvariants(t, q)
			}
		}

		got = append(got, all(q)...)
		diff(t, got, want)
	})
}

// =============================================================================
// Method: Dequeue() / TryDequeue() / Peek()
// =============================================================================

func TestDequeue_Empty(t *testing.T) {
	q := NewArray[int]()
	if _, err := q.Dequeue(); !errors.Is(err, apperr.ErrEmptyCollection) {
		t.Errorf("Dequeue() on empty error = %v, want %v", err, apperr.ErrEmptyCollection)
	}
	if x, ok := q.TryDequeue(); ok || x != 0 {
		t.Errorf("TryDequeue() on empty = %d, %v; want 0, false", x, ok)
	}
	if x, ok := q.Peek(); ok || x != 0 {
		t.Errorf("Peek() on empty = %d, %v; want 0, false", x, ok)
	}
}

func TestPeek_Idempotent(t *testing.T) {
	q := NewArray[string]()
	for _, s := range []string{"a", "b"} {
		if err := q.Enqueue(s); err != nil {
			t.Fatal(err)
		}
	}
	for range 3 {
		x, ok := q.Peek()
		if !ok || x != "a" {
			t.Fatalf("Peek() = %q, %v; want \"a\", true", x, ok)
		}
		if q.Len() != 2 {
			t.Fatalf("Len() = %d after Peek(); want 2", q.Len())
		}
	}
}

func TestDequeue_ClearsSlot(t *testing.T) {
	q := NewArray[*int]()
	for i := range 4 {
		v := i
		if err := q.Enqueue(&v); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := q.Dequeue(); err != nil {
		t.Fatal(err)
	}
	if q.buf.Data()[0] != nil {
		t.Error("dequeued slot still holds a pointer")
	}
}

// =============================================================================
// Resize Tests
// =============================================================================

func TestResize_Relinearizes(t *testing.T) {
	q := NewArray[int]()
	for i := range 4 {
		_ = q.Enqueue(i)
	}
	// Wrap: head moves to 2, then 4 and 5 land in slots 0 and 1.
	_, _ = q.Dequeue()
	_, _ = q.Dequeue()
	_ = q.Enqueue(4)
	_ = q.Enqueue(5)
	if q.head != 2 || q.Cap() != 4 {
		t.Fatalf("head = %d, Cap() = %d; want 2, 4", q.head, q.Cap())
	}
	before := slices.Collect(q.All())

	// Full: the next Enqueue doubles and must move head back to 0.
	_ = q.Enqueue(6)
	if q.head != 0 || q.Cap() != 8 {
		t.Fatalf("after grow head = %d, Cap() = %d; want 0, 8", q.head, q.Cap())
	}
	if diff := cmp.Diff(append(before, 6), slices.Collect(q.All())); diff != "" {
		t.Errorf("All() after grow; diff (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5, 6}, q.buf.Data()[:5]); diff != "" {
		t.Errorf("slots after grow; diff (-want +got):\n%s", diff)
	}
}

func TestResize_ShrinkRelinearizes(t *testing.T) {
	q := NewArray[int]()
	for i := range 8 {
		_ = q.Enqueue(i)
	}
	for range 5 {
		_, _ = q.Dequeue()
	}
	if q.Cap() != 8 {
		t.Fatalf("Cap() = %d; want 8", q.Cap())
	}
	// 2 of 8 slots left: shrinks to 4 with head reset.
	_, _ = q.Dequeue()
	if q.Cap() != 4 || q.head != 0 {
		t.Fatalf("Cap() = %d, head = %d; want 4, 0", q.Cap(), q.head)
	}
	if diff := cmp.Diff([]int{6, 7}, slices.Collect(q.All())); diff != "" {
		t.Errorf("All() after shrink; diff (-want +got):\n%s", diff)
	}
}

func TestOnResize(t *testing.T) {
	var caps []int
	q := NewArray[int]().OnResize(func(_, to int) {
		caps = append(caps, to)
	})
	for i := range 5 {
		_ = q.Enqueue(i)
	}
	all(q)
	if diff := cmp.Diff([]int{2, 4, 8, 4, 2, 1}, caps); diff != "" {
		t.Errorf("resize capacities; diff (-want +got):\n%s", diff)
	}
}

func TestEnqueue_MaxCapacity(t *testing.T) {
	q := NewArray[int]().WithMaxCapacity(2)
	_ = q.Enqueue(1)
	_ = q.Enqueue(2)
	if err := q.Enqueue(3); !errors.Is(err, apperr.ErrAllocationFailure) {
		t.Fatalf("Enqueue() beyond limit error = %v, want %v", err, apperr.ErrAllocationFailure)
	}
	if diff := cmp.Diff([]int{1, 2}, slices.Collect(q.All())); diff != "" {
		t.Errorf("All() after failed Enqueue; diff (-want +got):\n%s", diff)
	}
}

// =============================================================================
// Method: All() / Clear()
// =============================================================================

func TestAll_Restartable(t *testing.T) {
	q := NewArray[int]()
	for i := range 3 {
		_ = q.Enqueue(i)
	}
	seq := q.All()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs; diff (-first +second):\n%s", diff)
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d after iteration; want 3", q.Len())
	}
}

func TestClear(t *testing.T) {
	q := NewArray[int]()
	for i := range 10 {
		_ = q.Enqueue(i)
	}
	q.Clear()
	if !q.IsEmpty() || q.Cap() != 1 || q.head != 0 {
		t.Errorf("after Clear() Len = %d, Cap = %d, head = %d; want 0, 1, 0", q.Len(), q.Cap(), q.head)
	}
	_ = q.Enqueue(42)
	if x, _ := q.Peek(); x != 42 {
		t.Errorf("Peek() after Clear+Enqueue = %d; want 42", x)
	}
}

// =============================================================================
// Scenario: sliding window
// =============================================================================

func TestSlidingWindow(t *testing.T) {
	const ops, window = 10000, 50

	q := NewArray[int]()
	for i := range ops {
		if err := q.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d) error = %v", i, err)
		}
		if q.Len() > window {
			x, err := q.Dequeue()
			if err != nil {
				t.Fatalf("Dequeue() error = %v", err)
			}
			if x != i-window {
				t.Fatalf("Dequeue() = %d; want %d", x, i-window)
			}
		}
		checkInvariants(t, q)
	}

	var want []int
	for i := ops - window; i < ops; i++ {
		want = append(want, i)
	}
	if diff := cmp.Diff(want, slices.Collect(q.All())); diff != "" {
		t.Errorf("All() after sliding window; diff (-want +got):\n%s", diff)
	}
}
