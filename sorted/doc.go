// Package sorted provides Sequence, a slice-backed container that keeps its
// elements in non-decreasing order under an ordering.Strategy fixed at
// construction.
//
// # Overview
//
// Lookups are binary searches (O(log n) comparisons). Mutations locate their
// position the same way and then shift the elements in between, so their cost
// is linear in the distance moved. The sequence is sorted before and after
// every method call.
//
//	seq := sorted.FromUnsorted([]int{18, 1, 2, 20, 6}, ordering.Natural[int]())
//	seq.Insert(3, sorted.Last)
//	seq.Insert(12, sorted.Last)
//	// seq.Values() == []int{1, 2, 3, 6, 12, 18, 20}
//
// # Duplicates
//
// Equal elements are allowed. A Selection picks which of several equal
// positions a search returns: First (leftmost), Last (one past the rightmost)
// or Any (whichever the search meets first; do not depend on which).
//
// # Index-based writes
//
// InsertChecked and Set validate that the value fits between its neighbours
// and panic with an error wrapping errors.ErrOutOfOrder if it does not. The
// Unchecked variants perform the same validation only while assertions are
// compiled in; building with -tags assertions_disabled removes it. Callers that
// already know the value fits can use them on hot paths.
//
// # Views and aliasing
//
// A Sequence owns its backing slice. Constructors copy their input, and
// Subsequence returns an independent copy. Values exposes the backing slice
// without copying; treat it as read-only and do not keep it across mutations.
//
// # Thread Safety
//
// A Sequence is not safe for concurrent use. Synchronize externally, or give
// each goroutine its own sequence and combine them with Merge.
package sorted
