package buffer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-collections/pkg/common/apperr"
)

// target returns the capacity for n elements after a resize.
func target(n int) int {
	if n > math.MaxInt/growthFactor {
		return math.MaxInt
	}
	return max(minCapacity, growthFactor*n)
}

// growTarget returns the capacity needed to hold n+1 elements in a buffer
// currently holding n of capacity slots. If no resize is needed it returns
// capacity. A non-zero limit caps the result.
func growTarget(n, capacity, limit int) (int, error) {
	if n+1 <= capacity {
		return capacity, nil
	}
	if limit > 0 && n+1 > limit {
		return 0, apperr.AllocationFailure(component, n+1,
			errors.Errorf("max limit exceeded (limit: %d, count: %d)", limit, n))
	}

	newCap := target(n)
	if limit > 0 && newCap > limit {
		newCap = limit
	}
	return newCap, nil
}

// shrinkTarget reports whether a buffer of capacity slots holding n elements
// is overprovisioned and, if so, the capacity it should shrink to.
func shrinkTarget(n, capacity int) (int, bool) {
	if n > math.MaxInt/shrinkFactor || capacity < shrinkFactor*n {
		return capacity, false
	}
	newCap := target(n)
	if newCap == capacity {
		return capacity, false
	}
	return newCap, true
}
