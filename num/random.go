package num

import "math/rand/v2"

// Random returns a uniformly distributed float64 in [lo, hi]. The bounds
// may be given in either order; equal bounds return that bound.
func Random(lo, hi float64) float64 {
	lo, hi = ordered(lo, hi)
	if lo == hi {
		return lo
	}
	return lo + rand.Float64()*(hi-lo)
}

// RandomInt returns a uniformly distributed int in [lo, hi], both bounds
// inclusive and given in either order.
func RandomInt(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint64(hi) - uint64(lo)
	if span == ^uint64(0) {
		return int(rand.Uint64())
	}
	return lo + int(rand.Uint64N(span+1))
}
