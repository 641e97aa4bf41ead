// Package ordering defines the pluggable comparison rules that sorted
// sequences are built on.
//
// A Strategy answers "is A before, the same as, or after B". Three shapes are
// provided, all behind the same interface:
//
//   - Natural: the intrinsic order of a cmp.Ordered type.
//   - Predicate: a strict weak "less than" function.
//   - ByKey / ByKeyFunc: order by a key derived from each element.
//
// Searches compare one fixed value against many elements. Strategy.Probe
// captures that value once, so derived-key strategies extract the value's key
// a single time per search instead of once per comparison.
//
// Every strategy must be a consistent strict weak ordering. An inconsistent
// strategy does not crash anything, but the resulting order is unspecified.
package ordering

import (
	"github.com/amp-labs/amp-sorted/compare"
)

// Strategy is an ordering rule over T.
type Strategy[T any] interface {
	// Compare reports where a sorts relative to b.
	Compare(a, b T) compare.Result

	// Probe returns a function reporting where value sorts relative to a
	// given element. Any per-value work (such as key extraction) is done once,
	// when Probe is called.
	Probe(value T) Probe[T]
}

// Probe reports where a captured value sorts relative to element.
type Probe[T any] func(element T) compare.Result

// Func adapts a Strategy to the func(a, b T) int shape used by slices.SortFunc,
// slices.SortStableFunc and slices.BinarySearchFunc.
func Func[T any](strategy Strategy[T]) func(a, b T) int {
	return func(a, b T) int {
		return strategy.Compare(a, b).Int()
	}
}

// FirstUnsorted returns the first index i such that values[i] sorts before
// values[i-1]. The boolean is false when values is sorted.
func FirstUnsorted[T any](strategy Strategy[T], values []T) (int, bool) {
	for i := 1; i < len(values); i++ {
		if strategy.Compare(values[i], values[i-1]) == compare.Before {
			return i, true
		}
	}

	return 0, false
}

// IsSorted reports whether values is in non-decreasing order under strategy.
func IsSorted[T any](strategy Strategy[T], values []T) bool {
	_, unsorted := FirstUnsorted(strategy, values)

	return !unsorted
}

// reversed flips another strategy.
type reversed[T any] struct {
	inner Strategy[T]
}

// Reverse returns a strategy ordering elements in the opposite direction of
// strategy. Reversing a reversed strategy returns the original.
func Reverse[T any](strategy Strategy[T]) Strategy[T] { //nolint:ireturn
	if r, ok := strategy.(reversed[T]); ok {
		return r.inner
	}

	return reversed[T]{inner: strategy}
}

func (r reversed[T]) Compare(a, b T) compare.Result {
	return r.inner.Compare(a, b).Invert()
}

func (r reversed[T]) Probe(value T) Probe[T] {
	probe := r.inner.Probe(value)

	return func(element T) compare.Result {
		return probe(element).Invert()
	}
}
