package sortable

import "math"

// Float64 is a sortable wrapper type for float64.
//
// NaN sorts before every other value (including -Inf) and is equal to other
// NaNs, which keeps the ordering a strict weak order. This matches cmp.Compare.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals reports whether both values are equal, treating NaN as equal to NaN.
func (f Float64) Equals(other Float64) bool {
	if f.isNaN() || other.isNaN() {
		return f.isNaN() && other.isNaN()
	}

	return f == other
}

// LessThan reports whether f sorts before other.
func (f Float64) LessThan(other Float64) bool {
	if f.isNaN() {
		return !other.isNaN()
	}

	return f < other
}

func (f Float64) isNaN() bool {
	return math.IsNaN(float64(f))
}
