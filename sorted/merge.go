package sorted

import (
	"fmt"
	"slices"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/compare"
	sortederrors "github.com/amp-labs/amp-sorted/errors"
)

// InsertAll inserts each value independently. Use it when values is in no
// particular order; for sorted input MergeSorted does fewer comparisons.
func (s *Sequence[T]) InsertAll(values []T, sel Selection) {
	s.data = slices.Grow(s.data, len(values))

	for _, value := range values {
		s.Insert(value, sel)
	}
}

// MergeSorted inserts values, which must already be sorted under the
// sequence's strategy, choosing among equal elements with sel.
//
// Because each value's insertion point is never left of the previous one's,
// every search starts just past the previously inserted value instead of at
// the front of the sequence.
//
// While assertions are enabled, unsorted input panics with an error wrapping
// errors.ErrNotSorted before anything is inserted.
func (s *Sequence[T]) MergeSorted(values []T, sel Selection) {
	if assert.Enabled {
		mustBeSorted(s.strategy, values, "MergeSorted")
	}

	s.data = slices.Grow(s.data, len(values))

	bound := 0

	for _, value := range values {
		index := s.locate(s.strategy.Probe(value), sel, bound, len(s.data))

		s.insertAt(index, value)

		bound = index + 1
	}
}

// Merge inserts every element of other, which should share this sequence's
// ordering, via MergeSorted. Merging a sequence into itself is allowed.
// Each element shifts the tail after it, so to combine two large sequences
// use MergeAll.
func (s *Sequence[T]) Merge(other *Sequence[T], sel Selection) {
	values := other.data
	if other == s {
		values = slices.Clone(values)
	}

	s.MergeSorted(values, sel)
}

// MergeAll returns a new sequence holding every element of seqs in order,
// ordered by the first sequence's strategy. Equal elements keep the order of
// the sequences they came from, so the result is what MergeSorted with Last
// would produce, but elements are copied into place rather than shifted and
// the work is linear in the total length per merge level.
//
// The result's stats are the sum of the inputs' stats plus the comparisons
// made while merging. The inputs are not modified. With no seqs there is no
// strategy to order by, so it panics with an error wrapping
// errors.ErrNoStrategy.
func MergeAll[T any](seqs ...*Sequence[T]) *Sequence[T] {
	if len(seqs) == 0 {
		panic(fmt.Errorf("sorted: MergeAll of no sequences: %w", sortederrors.ErrNoStrategy))
	}

	out := New(seqs[0].strategy)

	runs := make([][]T, len(seqs))
	for i, seq := range seqs {
		runs[i] = seq.data
		out.stats = out.stats.Add(seq.stats)
	}

	for len(runs) > 1 {
		next := runs[:0]

		for i := 0; i < len(runs); i += 2 {
			if i+1 == len(runs) {
				next = append(next, runs[i])

				continue
			}

			next = append(next, out.mergeTwo(runs[i], runs[i+1]))
		}

		runs = next
	}

	// A single input still shares its backing array.
	if len(seqs) == 1 {
		out.data = slices.Clone(runs[0])
	} else {
		out.data = runs[0]
	}

	return out
}

// mergeTwo returns a new slice with the elements of a and b in order. On ties
// the element from a comes first.
func (s *Sequence[T]) mergeTwo(a, b []T) []T {
	merged := make([]T, 0, len(a)+len(b))

	if len(a) == 0 || len(b) == 0 {
		return append(append(merged, a...), b...)
	}

	s.stats.Comparisons++

	if s.strategy.Compare(b[0], a[len(a)-1]) != compare.Before {
		return append(append(merged, a...), b...)
	}

	i, j := 0, 0

	for i < len(a) && j < len(b) {
		s.stats.Comparisons++

		if s.strategy.Compare(b[j], a[i]) == compare.Before {
			merged = append(merged, b[j])
			j++
		} else {
			merged = append(merged, a[i])
			i++
		}
	}

	merged = append(merged, a[i:]...)

	return append(merged, b[j:]...)
}
