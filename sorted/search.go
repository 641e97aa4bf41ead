package sorted

import (
	"fmt"

	"github.com/amp-labs/amp-sorted/compare"
	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/ordering"
)

// locate is the binary search every lookup and mutation goes through. It
// searches s.data[lo:hi] for the position of the probed value and returns an
// index in [lo, hi]:
//   - First: the lowest index whose element is not before the value.
//   - Last: the lowest index whose element is after the value.
//   - Any: the index of some equal element, else the insertion point.
//
// Unknown selections behave like First.
func (s *Sequence[T]) locate(probe ordering.Probe[T], sel Selection, lo, hi int) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) //nolint:gosec // lo and hi are non-negative slice indices

		s.stats.Comparisons++

		switch probe(s.data[mid]) {
		case compare.Before:
			hi = mid
		case compare.After:
			lo = mid + 1
		case compare.Same:
			switch sel {
			case Last:
				lo = mid + 1
			case Any:
				return mid
			default: // First
				hi = mid
			}
		}
	}

	return lo
}

// matches reports whether index holds an element equal to the probed value.
// Indices at the edges (including Len) simply don't match.
func (s *Sequence[T]) matches(probe ordering.Probe[T], index int) bool {
	if index < 0 || index >= len(s.data) {
		return false
	}

	s.stats.Comparisons++

	return probe(s.data[index]) == compare.Same
}

// Locate returns the index at which value would be inserted, choosing among
// equal elements with sel. The result is in [0, Len()].
func (s *Sequence[T]) Locate(value T, sel Selection) int {
	return s.locate(s.strategy.Probe(value), sel, 0, len(s.data))
}

// LocateIn is Locate restricted to the index range [from, to). The result is
// in [from, to]. It panics if the range is invalid.
func (s *Sequence[T]) LocateIn(value T, sel Selection, from, to int) int {
	if from < 0 || from > to || to > len(s.data) {
		panic(fmt.Sprintf("sorted: range [%d:%d] out of bounds for length %d", from, to, len(s.data)))
	}

	return s.locate(s.strategy.Probe(value), sel, from, to)
}

// Find returns the index of the first element equal to value, or None.
func (s *Sequence[T]) Find(value T) optional.Value[int] {
	probe := s.strategy.Probe(value)

	index := s.locate(probe, First, 0, len(s.data))
	if !s.matches(probe, index) {
		return optional.None[int]()
	}

	return optional.Some(index)
}

// Contains reports whether an element equal to value is present.
func (s *Sequence[T]) Contains(value T) bool {
	probe := s.strategy.Probe(value)

	return s.matches(probe, s.locate(probe, Any, 0, len(s.data)))
}

// EqualRange returns the half-open index range [from, to) of the elements
// equal to value. When there are none, from == to is the insertion point.
func (s *Sequence[T]) EqualRange(value T) (int, int) {
	probe := s.strategy.Probe(value)

	from := s.locate(probe, First, 0, len(s.data))
	to := s.locate(probe, Last, from, len(s.data))

	return from, to
}

// Count returns the number of elements equal to value.
func (s *Sequence[T]) Count(value T) int {
	from, to := s.EqualRange(value)

	return to - from
}
