package sorted

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/amp-sorted/assert"
	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/ordering"
)

// Sequence is an ordered, duplicate-permitting list of T kept sorted under a
// fixed ordering.Strategy.
type Sequence[T any] struct {
	data     []T
	strategy ordering.Strategy[T]
	stats    Stats
}

// New returns an empty sequence ordered by strategy. It panics if strategy is nil.
func New[T any](strategy ordering.Strategy[T]) *Sequence[T] {
	if strategy == nil {
		panic(fmt.Errorf("sorted: %w", sortederrors.ErrNoStrategy))
	}

	return &Sequence[T]{strategy: strategy}
}

// FromUnsorted returns a sequence holding a sorted copy of data. The sort is
// stable: equal elements keep their relative order from data.
func FromUnsorted[T any](data []T, strategy ordering.Strategy[T]) *Sequence[T] {
	seq := New(strategy)
	seq.data = slices.Clone(data)

	slices.SortStableFunc(seq.data, ordering.Func(strategy))

	return seq
}

// FromSorted returns a sequence holding a copy of data after verifying, in
// O(n), that data is sorted under strategy. It returns None if it is not;
// callers typically fall back to FromUnsorted.
func FromSorted[T any](data []T, strategy ordering.Strategy[T]) optional.Value[*Sequence[T]] {
	seq := New(strategy)

	if !ordering.IsSorted(strategy, data) {
		return optional.None[*Sequence[T]]()
	}

	seq.data = slices.Clone(data)

	return optional.Some(seq)
}

// UnsafeFromSorted returns a sequence holding a copy of data, which the
// caller asserts is already sorted under strategy. While assertions are
// enabled the claim is verified and a violation panics with an error wrapping
// errors.ErrNotSorted; with assertions disabled it is trusted.
func UnsafeFromSorted[T any](data []T, strategy ordering.Strategy[T]) *Sequence[T] {
	seq := New(strategy)

	if assert.Enabled {
		mustBeSorted(strategy, data, "UnsafeFromSorted")
	}

	seq.data = slices.Clone(data)

	return seq
}

func mustBeSorted[T any](strategy ordering.Strategy[T], data []T, caller string) {
	if idx, unsorted := ordering.FirstUnsorted(strategy, data); unsorted {
		panic(fmt.Errorf("sorted: %s: %w: element %v at index %d sorts before %v at index %d",
			caller, sortederrors.ErrNotSorted, data[idx], idx, data[idx-1], idx-1))
	}
}

// Strategy returns the ordering the sequence was built with.
func (s *Sequence[T]) Strategy() ordering.Strategy[T] { //nolint:ireturn
	return s.strategy
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.data)
}

// At returns the element at index. It panics if index is out of range.
func (s *Sequence[T]) At(index int) T {
	return s.data[index]
}

// Min returns the first element, which is a minimum, or None if the sequence is empty.
func (s *Sequence[T]) Min() optional.Value[T] {
	if len(s.data) == 0 {
		return optional.None[T]()
	}

	return optional.Some(s.data[0])
}

// Max returns the last element, which is a maximum, or None if the sequence is empty.
func (s *Sequence[T]) Max() optional.Value[T] {
	if len(s.data) == 0 {
		return optional.None[T]()
	}

	return optional.Some(s.data[len(s.data)-1])
}

// Values returns the backing slice without copying. The slice is clipped, so
// appending to it never writes into the sequence, but its elements must not be
// modified and it should not be used after the sequence is mutated.
func (s *Sequence[T]) Values() []T {
	return slices.Clip(s.data)
}

// ToSlice returns a copy of the elements in order.
func (s *Sequence[T]) ToSlice() []T {
	return slices.Clone(s.data)
}

// Seq returns an iterator over the elements in order.
func (s *Sequence[T]) Seq() iter.Seq[T] {
	return slices.Values(s.data)
}

// All returns an iterator over index, element pairs in order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return slices.All(s.data)
}

// Backward returns an iterator over the elements from last to first.
func (s *Sequence[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.data) - 1; i >= 0; i-- {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same strategy and fresh stats.
func (s *Sequence[T]) Clone() *Sequence[T] {
	return &Sequence[T]{
		data:     slices.Clone(s.data),
		strategy: s.strategy,
	}
}

// Subsequence returns an independent copy of the elements in [from, to),
// ordered by the same strategy. Later changes to either sequence are not
// visible in the other. It panics if the range is invalid.
func (s *Sequence[T]) Subsequence(from, to int) *Sequence[T] {
	return &Sequence[T]{
		data:     slices.Clone(s.data[from:to:to]),
		strategy: s.strategy,
	}
}

// Stats returns the work counters accumulated so far.
func (s *Sequence[T]) Stats() Stats {
	return s.stats
}

// ResetStats zeroes the work counters.
func (s *Sequence[T]) ResetStats() {
	s.stats = Stats{}
}

// String formats the elements like a slice, e.g. "[1 2 3]".
func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.data)
}
