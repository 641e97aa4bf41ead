package sorted

import (
	"fmt"
	"slices"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/compare"
	sortederrors "github.com/amp-labs/amp-sorted/errors"
)

// Insert adds value at the position chosen by sel and returns its index.
func (s *Sequence[T]) Insert(value T, sel Selection) int {
	index := s.locate(s.strategy.Probe(value), sel, 0, len(s.data))

	s.insertAt(index, value)

	return index
}

// InsertChecked inserts value at index, shifting later elements right. It
// panics with an error wrapping errors.ErrOutOfOrder if value sorts before the
// element at index-1 or after the element currently at index.
func (s *Sequence[T]) InsertChecked(value T, index int) {
	s.checkIndex(index, len(s.data))
	s.mustFit(value, index, index-1, index)
	s.insertAt(index, value)
}

// InsertUnchecked is InsertChecked for callers that have already established
// that value fits at index. The check only runs while assertions are enabled.
func (s *Sequence[T]) InsertUnchecked(value T, index int) {
	if assert.Enabled {
		s.checkIndex(index, len(s.data))
		s.mustFit(value, index, index-1, index)
	}

	s.insertAt(index, value)
}

// Set overwrites the element at index with value. It panics with an error
// wrapping errors.ErrOutOfOrder if value sorts before the element at index-1
// or after the element at index+1.
func (s *Sequence[T]) Set(index int, value T) {
	s.checkIndex(index, len(s.data)-1)
	s.mustFit(value, index, index-1, index+1)

	s.data[index] = value
}

// SetUnchecked is Set for callers that have already established that value
// fits at index. The check only runs while assertions are enabled.
func (s *Sequence[T]) SetUnchecked(index int, value T) {
	if assert.Enabled {
		s.checkIndex(index, len(s.data)-1)
		s.mustFit(value, index, index-1, index+1)
	}

	s.data[index] = value
}

// Replace swaps the element at index for value and moves value to wherever
// it now belongs, returning its final index. Only the elements between the
// old and the final position shift, by one place each. Equal elements keep
// their order: a value moving right lands before its equals, one moving left
// lands after them. It panics if index is out of range.
func (s *Sequence[T]) Replace(index int, value T) int {
	old := s.data[index]
	probe := s.strategy.Probe(value)

	s.stats.Comparisons++

	switch probe(old) {
	case compare.After:
		landing := s.locate(probe, First, index+1, len(s.data))
		final := landing - 1

		copy(s.data[index:final], s.data[index+1:landing])
		s.data[final] = value
		s.stats.Moves += uint64(final - index) //nolint:gosec // final >= index

		return final
	case compare.Before:
		landing := s.locate(probe, Last, 0, index)

		copy(s.data[landing+1:index+1], s.data[landing:index])
		s.data[landing] = value
		s.stats.Moves += uint64(index - landing) //nolint:gosec // landing <= index

		return landing
	default:
		s.data[index] = value

		return index
	}
}

// Remove deletes and returns the element at index. It panics if index is out of range.
func (s *Sequence[T]) Remove(index int) T {
	value := s.data[index]

	s.stats.Moves += uint64(len(s.data) - index - 1) //nolint:gosec // index < len
	s.data = slices.Delete(s.data, index, index+1)

	return value
}

// RemoveSubrange deletes the elements in [from, to). It panics if the range is invalid.
func (s *Sequence[T]) RemoveSubrange(from, to int) {
	if from < 0 || from > to || to > len(s.data) {
		panic(fmt.Sprintf("sorted: range [%d:%d] out of bounds for length %d", from, to, len(s.data)))
	}

	s.stats.Moves += uint64(len(s.data) - to) //nolint:gosec // to <= len
	s.data = slices.Delete(s.data, from, to)
}

// RemoveValue deletes the first element equal to value and reports whether
// one was found.
func (s *Sequence[T]) RemoveValue(value T) bool {
	index, found := s.Find(value).Get()
	if !found {
		return false
	}

	s.Remove(index)

	return true
}

func (s *Sequence[T]) insertAt(index int, value T) {
	s.stats.Moves += uint64(len(s.data) - index) //nolint:gosec // index <= len
	s.data = slices.Insert(s.data, index, value)
}

func (s *Sequence[T]) checkIndex(index, maxIndex int) {
	if index < 0 || index > maxIndex {
		panic(fmt.Sprintf("sorted: index %d out of range for length %d", index, len(s.data)))
	}
}

// mustFit panics unless value, placed at index, sorts no earlier than the
// element at left and no later than the element at right. Neighbour indices
// outside the sequence are skipped.
func (s *Sequence[T]) mustFit(value T, index, left, right int) {
	if left >= 0 {
		s.stats.Comparisons++

		if s.strategy.Compare(value, s.data[left]) == compare.Before {
			panic(fmt.Errorf("sorted: %w: %v at index %d sorts before its neighbour %v at index %d",
				sortederrors.ErrOutOfOrder, value, index, s.data[left], left))
		}
	}

	if right < len(s.data) {
		s.stats.Comparisons++

		if s.strategy.Compare(value, s.data[right]) == compare.After {
			panic(fmt.Errorf("sorted: %w: %v at index %d sorts after its neighbour %v at index %d",
				sortederrors.ErrOutOfOrder, value, index, s.data[right], right))
		}
	}
}
