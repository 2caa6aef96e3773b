package buffer

// Relinearize copies the n elements stored in src starting at physical slot
// head, wrapping at len(src), into dst[0:n] in logical order. It uses at most
// two range copies, split at the wrap point. It returns the number of
// elements copied.
func Relinearize[T any](dst, src []T, head, n int) int {
	if n == 0 {
		return 0
	}

	end := head + n
	// Simple case: no wrap-around
	if end <= len(src) {
		return copy(dst[:n], src[head:end])
	}

	// Wrap-around case
	k := copy(dst, src[head:])
	return k + copy(dst[k:n], src[:end-len(src)])
}

// wrapIndex maps logical position k to its physical slot in a ring of
// capacity slots whose first element lives at head.
func wrapIndex(head, k, capacity int) int {
	return (head + k) % capacity
}
