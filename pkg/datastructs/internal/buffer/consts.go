package buffer

const (
	// minCapacity is the capacity floor. A buffer never holds fewer slots, so
	// modular indexing never divides by zero.
	minCapacity = 1

	// growthFactor multiplies the element count to get the capacity after a
	// grow or a shrink.
	growthFactor = 2

	// shrinkFactor triggers a shrink once capacity >= shrinkFactor * count.
	// The gap to growthFactor keeps a push right after a shrink (or a pop
	// right after a grow) from resizing again.
	shrinkFactor = 3

	component = "buffer"
)
