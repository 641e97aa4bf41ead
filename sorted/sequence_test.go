package sorted

import (
	"slices"
	"testing"

	"github.com/amp-labs/amp-sorted/assert"
	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/ordering"
	testassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUnsorted(t *testing.T) {
	t.Parallel()

	t.Run("sorts a copy", func(t *testing.T) {
		t.Parallel()

		input := []int{18, 1, 2, 20, 6}
		seq := FromUnsorted(input, ordering.Natural[int]())

		testassert.Equal(t, []int{1, 2, 6, 18, 20}, seq.ToSlice())
		testassert.Equal(t, []int{18, 1, 2, 20, 6}, input, "input must not be modified")
	})

	t.Run("is stable for equal keys", func(t *testing.T) {
		t.Parallel()

		type pair struct {
			key   int
			label string
		}

		input := []pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}
		seq := FromUnsorted(input, ordering.ByKey(func(p pair) int { return p.key }))

		testassert.Equal(t, []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, seq.ToSlice())
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		seq := FromUnsorted[int](nil, ordering.Natural[int]())
		testassert.Equal(t, 0, seq.Len())
		testassert.True(t, seq.Min().Empty())
	})
}

func TestFromSorted(t *testing.T) {
	t.Parallel()

	t.Run("accepts sorted data", func(t *testing.T) {
		t.Parallel()

		seq, ok := FromSorted([]int{1, 2, 2, 9}, ordering.Natural[int]()).Get()
		require.True(t, ok)
		testassert.Equal(t, []int{1, 2, 2, 9}, seq.ToSlice())
	})

	t.Run("rejects unsorted data", func(t *testing.T) {
		t.Parallel()

		testassert.True(t, FromSorted([]int{1, 3, 2}, ordering.Natural[int]()).Empty())
	})

	t.Run("respects the strategy", func(t *testing.T) {
		t.Parallel()

		desc := ordering.Reverse(ordering.Natural[int]())

		testassert.True(t, FromSorted([]int{9, 5, 1}, desc).NonEmpty())
		testassert.True(t, FromSorted([]int{1, 5, 9}, desc).Empty())
	})

	t.Run("copies its input", func(t *testing.T) {
		t.Parallel()

		input := []int{1, 2, 3}
		seq := FromSorted(input, ordering.Natural[int]()).GetOrPanic()
		input[0] = 100

		testassert.Equal(t, 1, seq.At(0))
	})
}

func TestUnsafeFromSorted(t *testing.T) {
	t.Parallel()

	seq := UnsafeFromSorted([]int{1, 4, 4, 8}, ordering.Natural[int]())
	testassert.Equal(t, []int{1, 4, 4, 8}, seq.ToSlice())

	if !assert.Enabled {
		t.Skip("verification is compiled out")
	}

	err := recoverError(t, func() {
		UnsafeFromSorted([]int{1, 4, 3}, ordering.Natural[int]())
	})
	require.ErrorIs(t, err, sortederrors.ErrNotSorted)
	testassert.Contains(t, err.Error(), "element 3 at index 2 sorts before 4 at index 1")
}

func TestNew(t *testing.T) {
	t.Parallel()

	seq := New(ordering.Natural[string]())
	testassert.Equal(t, 0, seq.Len())
	testassert.NotNil(t, seq.Strategy())

	err := recoverError(t, func() {
		New[int](nil)
	})
	require.ErrorIs(t, err, sortederrors.ErrNoStrategy)
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	seq := FromUnsorted([]int{5, -3, 12, 7}, ordering.Natural[int]())
	seq.ResetStats()

	testassert.Equal(t, -3, seq.Min().GetOrPanic())
	testassert.Equal(t, 12, seq.Max().GetOrPanic())
	testassert.Equal(t, Stats{}, seq.Stats(), "min and max must not compare or scan")

	empty := New(ordering.Natural[int]())
	testassert.True(t, empty.Min().Empty())
	testassert.True(t, empty.Max().Empty())

	desc := FromUnsorted([]int{5, -3, 12}, ordering.Reverse(ordering.Natural[int]()))
	testassert.Equal(t, 12, desc.Min().GetOrPanic(), "min is the first element under the strategy")
}

func TestValues(t *testing.T) {
	t.Parallel()

	t.Run("shares the backing store", func(t *testing.T) {
		t.Parallel()

		seq := FromUnsorted([]int{3, 1, 2}, ordering.Natural[int]())
		values := seq.Values()

		require.Len(t, values, 3)
		testassert.Same(t, &seq.data[0], &values[0])
	})

	t.Run("appending never writes into the sequence", func(t *testing.T) {
		t.Parallel()

		seq := New(ordering.Natural[int]())
		seq.data = slices.Grow(seq.data, 10)
		seq.Insert(1, Last)
		seq.Insert(2, Last)

		_ = append(seq.Values(), 99)

		testassert.Equal(t, []int{1, 2}, seq.ToSlice())
		testassert.NotEqual(t, 99, seq.data[:3][2])
		testassert.Equal(t, 2, seq.Len())
		testassert.Equal(t, 10, cap(seq.data))
	})

	t.Run("round trips through FromSorted", func(t *testing.T) {
		t.Parallel()

		rng := newRand(t)
		seq := FromUnsorted(randomInts(rng, 200, 50), ordering.Natural[int]())

		again, ok := FromSorted(seq.Values(), seq.Strategy()).Get()
		require.True(t, ok)
		testassert.Equal(t, seq.ToSlice(), again.ToSlice())
	})
}

func TestSubsequence(t *testing.T) {
	t.Parallel()

	seq := FromUnsorted([]int{1, 2, 3, 4, 5}, ordering.Natural[int]())
	sub := seq.Subsequence(1, 4)

	testassert.Equal(t, []int{2, 3, 4}, sub.ToSlice())

	seq.Replace(2, 10)
	testassert.Equal(t, []int{2, 3, 4}, sub.ToSlice(), "view is a snapshot")

	sub.Insert(3, Last)
	testassert.Equal(t, []int{1, 2, 4, 5, 10}, seq.ToSlice(), "parent is unaffected by the view")
	testassert.Equal(t, []int{2, 3, 3, 4}, sub.ToSlice())

	testassert.Panics(t, func() {
		seq.Subsequence(3, 2)
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	seq := FromUnsorted([]int{4, 2}, ordering.Natural[int]())
	seq.Insert(3, Last)

	clone := seq.Clone()
	clone.Insert(1, Last)

	testassert.Equal(t, []int{2, 3, 4}, seq.ToSlice())
	testassert.Equal(t, []int{1, 2, 3, 4}, clone.ToSlice())
	testassert.NotEqual(t, Stats{}, seq.Stats())
}

func TestIterators(t *testing.T) {
	t.Parallel()

	seq := FromUnsorted([]string{"b", "c", "a"}, ordering.Natural[string]())

	testassert.Equal(t, []string{"a", "b", "c"}, slices.Collect(seq.Seq()))
	testassert.Equal(t, []string{"c", "b", "a"}, slices.Collect(seq.Backward()))

	var indices []int

	for i, v := range seq.All() {
		indices = append(indices, i)

		testassert.Equal(t, seq.At(i), v)
	}

	testassert.Equal(t, []int{0, 1, 2}, indices)

	var first []string

	for v := range seq.Backward() {
		first = append(first, v)

		break
	}

	testassert.Equal(t, []string{"c"}, first)
}

func TestString(t *testing.T) {
	t.Parallel()

	testassert.Equal(t, "[1 2 3]", FromUnsorted([]int{3, 2, 1}, ordering.Natural[int]()).String())
	testassert.Equal(t, "[]", New(ordering.Natural[int]()).String())
}

func TestSelection_String(t *testing.T) {
	t.Parallel()

	testassert.Equal(t, "first", First.String())
	testassert.Equal(t, "last", Last.String())
	testassert.Equal(t, "any", Any.String())
	testassert.Equal(t, "Selection(9)", Selection(9).String())
}
