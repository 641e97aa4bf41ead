package sorted

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/amp-sorted/ordering"
	"github.com/stretchr/testify/require"
)

// recoverError runs fn and returns the error it panicked with, failing the
// test if it did not panic with an error.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		var ok bool

		err, ok = r.(error)
		require.True(t, ok, "expected to panic with an error, got %T: %v", r, r)
	}()

	fn()

	return nil
}

func requireSorted[T any](t *testing.T, seq *Sequence[T]) {
	t.Helper()

	index, unsorted := ordering.FirstUnsorted(seq.Strategy(), seq.data)
	require.False(t, unsorted, "sequence %v is out of order at index %d", seq.data, index)
}

func randomInts(rng *rand.Rand, n, limit int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = rng.IntN(limit)
	}

	return values
}

func sortedCopy(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)

	return out
}

func newRand(t *testing.T) *rand.Rand {
	t.Helper()

	return rand.New(rand.NewPCG(uint64(len(t.Name())), 0x5eed)) //nolint:gosec
}
