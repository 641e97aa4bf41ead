package sorted

import (
	"sort"
	"testing"

	"github.com/amp-labs/amp-sorted/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	t.Parallel()

	seq := FromSorted([]int{1, 2, 5, 6, 6, 10, 12}, ordering.Natural[int]()).GetOrPanic()

	tests := []struct {
		name     string
		value    int
		sel      Selection
		expected int
	}{
		{name: "first of duplicates", value: 6, sel: First, expected: 3},
		{name: "last of duplicates", value: 6, sel: Last, expected: 5},
		{name: "above every element", value: 100, sel: First, expected: 7},
		{name: "above every element with last", value: 100, sel: Last, expected: 7},
		{name: "below every element", value: -100, sel: First, expected: 0},
		{name: "below every element with last", value: -100, sel: Last, expected: 0},
		{name: "absent value in the middle", value: 7, sel: First, expected: 5},
		{name: "absent value in the middle with last", value: 7, sel: Last, expected: 5},
		{name: "unique value first", value: 10, sel: First, expected: 5},
		{name: "unique value last", value: 10, sel: Last, expected: 6},
		{name: "absent value with any", value: 3, sel: Any, expected: 2},
		{name: "unknown selection behaves like first", value: 6, sel: Selection(42), expected: 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			clone := seq.Clone()
			assert.Equal(t, testCase.expected, clone.Locate(testCase.value, testCase.sel))
		})
	}

	t.Run("any returns some equal element", func(t *testing.T) {
		t.Parallel()

		clone := seq.Clone()
		index := clone.Locate(6, Any)

		require.GreaterOrEqual(t, index, 3)
		require.Less(t, index, 5)
		assert.Equal(t, 6, clone.At(index))
	})

	t.Run("empty sequence", func(t *testing.T) {
		t.Parallel()

		empty := New(ordering.Natural[int]())
		assert.Equal(t, 0, empty.Locate(4, First))
		assert.Equal(t, 0, empty.Locate(4, Last))
		assert.Equal(t, 0, empty.Locate(4, Any))
	})
}

func TestLocate_MatchesLinearDefinition(t *testing.T) {
	t.Parallel()

	rng := newRand(t)

	for round := range 50 {
		values := sortedCopy(randomInts(rng, rng.IntN(64), 20))
		seq := FromSorted(values, ordering.Natural[int]()).GetOrPanic()

		for query := -1; query <= 21; query++ {
			first := sort.Search(len(values), func(i int) bool { return values[i] >= query })
			last := sort.Search(len(values), func(i int) bool { return values[i] > query })

			require.Equal(t, first, seq.Locate(query, First), "round %d first %d in %v", round, query, values)
			require.Equal(t, last, seq.Locate(query, Last), "round %d last %d in %v", round, query, values)

			index := seq.Locate(query, Any)
			if first < last {
				require.Equal(t, query, seq.At(index), "round %d any %d in %v", round, query, values)
			} else {
				require.Equal(t, first, index, "round %d any %d in %v", round, query, values)
			}
		}
	}
}

func TestLocate_ComparisonBound(t *testing.T) {
	t.Parallel()

	values := make([]int, 1000)
	for i := range values {
		values[i] = i * 2
	}

	seq := FromSorted(values, ordering.Natural[int]()).GetOrPanic()

	for _, query := range []int{-5, 0, 1, 998, 999, 1998, 5000} {
		for _, sel := range []Selection{First, Last, Any} {
			seq.ResetStats()
			seq.Locate(query, sel)

			assert.LessOrEqual(t, seq.Stats().Comparisons, uint64(10), "query %d %s", query, sel)
		}
	}
}

func TestLocate_ExtractsProbeKeyOnce(t *testing.T) {
	t.Parallel()

	type record struct {
		id    int
		score int
	}

	keyCalls := 0
	strategy := ordering.ByKey(func(r record) int {
		keyCalls++

		return r.score
	})

	records := make([]record, 500)
	for i := range records {
		records[i] = record{id: i, score: i / 3}
	}

	seq := FromSorted(records, strategy).GetOrPanic()
	seq.ResetStats()

	keyCalls = 0

	seq.Locate(record{id: -1, score: 77}, First)

	comparisons := seq.Stats().Comparisons
	require.Positive(t, comparisons)
	assert.Equal(t, int(comparisons)+1, keyCalls, "one key for the probe plus one per compared element")
}

func TestLocateIn(t *testing.T) {
	t.Parallel()

	seq := FromSorted([]int{1, 2, 5, 6, 6, 10, 12}, ordering.Natural[int]()).GetOrPanic()

	assert.Equal(t, 4, seq.LocateIn(6, First, 4, 7))
	assert.Equal(t, 4, seq.LocateIn(6, Last, 0, 4))
	assert.Equal(t, 5, seq.LocateIn(100, First, 2, 5))
	assert.Equal(t, 2, seq.LocateIn(-1, Last, 2, 5))
	assert.Equal(t, 3, seq.LocateIn(6, Any, 3, 3), "empty range returns its start")

	assert.Panics(t, func() { seq.LocateIn(1, First, -1, 3) })
	assert.Panics(t, func() { seq.LocateIn(1, First, 4, 3) })
	assert.Panics(t, func() { seq.LocateIn(1, First, 0, 8) })
}

func TestFind(t *testing.T) {
	t.Parallel()

	seq := FromSorted([]int{1, 2, 5, 6, 6, 10, 12}, ordering.Natural[int]()).GetOrPanic()

	tests := []struct {
		name     string
		value    int
		index    int
		expected bool
	}{
		{name: "leftmost duplicate", value: 6, index: 3, expected: true},
		{name: "first element", value: 1, index: 0, expected: true},
		{name: "last element", value: 12, index: 6, expected: true},
		{name: "absent in the middle", value: 7},
		{name: "greater than every element", value: 13},
		{name: "smaller than every element", value: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			index, found := seq.Clone().Find(testCase.value).Get()
			assert.Equal(t, testCase.expected, found)

			if testCase.expected {
				assert.Equal(t, testCase.index, index)
			}
		})
	}

	t.Run("empty sequence", func(t *testing.T) {
		t.Parallel()

		assert.True(t, New(ordering.Natural[int]()).Find(3).Empty())
	})
}

func TestContains(t *testing.T) {
	t.Parallel()

	seq := FromUnsorted([]string{"pear", "apple", "fig"}, ordering.Natural[string]())

	assert.True(t, seq.Contains("fig"))
	assert.True(t, seq.Contains("pear"))
	assert.False(t, seq.Contains("kiwi"))
	assert.False(t, seq.Contains("zucchini"))
	assert.False(t, New(ordering.Natural[string]()).Contains("fig"))
}

func TestEqualRange(t *testing.T) {
	t.Parallel()

	seq := FromSorted([]int{1, 2, 5, 6, 6, 6, 10}, ordering.Natural[int]()).GetOrPanic()

	from, to := seq.EqualRange(6)
	assert.Equal(t, 3, from)
	assert.Equal(t, 6, to)
	assert.Equal(t, 3, seq.Count(6))

	from, to = seq.EqualRange(7)
	assert.Equal(t, 6, from)
	assert.Equal(t, 6, to)
	assert.Equal(t, 0, seq.Count(7))

	assert.Equal(t, 1, seq.Count(1))
}
