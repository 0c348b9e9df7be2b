package latab

import "math"

// WindowBounds returns the half-open interval [start, end) of length size
// that contains position, aligned to multiples of size. A non-positive size
// spans the whole axis: start is 0 and end is math.MaxInt, so callers must
// clamp end to the axis length.
func WindowBounds(position, size int) (start, end int) {
	if size <= 0 {
		return 0, math.MaxInt
	}
	end = position - position%size + size
	return max(0, end-size), end
}
