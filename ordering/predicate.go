package ordering

import (
	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/compare"
)

type predicate[T any] struct {
	less func(a, b T) bool
}

// Predicate orders values by a strict weak "less than" function. Two values
// are the same when neither is less than the other.
func Predicate[T any](less func(a, b T) bool) Strategy[T] { //nolint:ireturn
	assert.True(less != nil, "ordering: Predicate called with a nil function")

	return predicate[T]{less: less}
}

func (p predicate[T]) Compare(a, b T) compare.Result {
	if p.less(a, b) {
		return compare.Before
	}

	if p.less(b, a) {
		return compare.After
	}

	return compare.Same
}

func (p predicate[T]) Probe(value T) Probe[T] {
	return func(element T) compare.Result {
		return p.Compare(value, element)
	}
}
