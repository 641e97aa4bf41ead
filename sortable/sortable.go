package sortable

import (
	"github.com/amp-labs/amp-sorted/compare"
)

// Sortable is implemented by types that know how to order themselves.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare returns where a sorts relative to b using only LessThan.
func Compare[T Sortable[T]](a, b T) compare.Result {
	if a.LessThan(b) {
		return compare.Before
	}

	if b.LessThan(a) {
		return compare.After
	}

	return compare.Same
}
