package ordering

import (
	"cmp"

	"github.com/amp-labs/amp-sorted/compare"
	"github.com/amp-labs/amp-sorted/sortable"
)

type natural[T cmp.Ordered] struct{}

// Natural orders values by their intrinsic order, as cmp.Compare does.
// For floating point types NaN sorts first.
func Natural[T cmp.Ordered]() Strategy[T] { //nolint:ireturn
	return natural[T]{}
}

func (natural[T]) Compare(a, b T) compare.Result {
	return compare.Of(cmp.Compare(a, b))
}

func (natural[T]) Probe(value T) Probe[T] {
	return func(element T) compare.Result {
		return compare.Of(cmp.Compare(value, element))
	}
}

type selfSorting[T sortable.Sortable[T]] struct{}

// OfSortable orders values with their own LessThan method.
func OfSortable[T sortable.Sortable[T]]() Strategy[T] { //nolint:ireturn
	return selfSorting[T]{}
}

func (selfSorting[T]) Compare(a, b T) compare.Result {
	return sortable.Compare(a, b)
}

func (selfSorting[T]) Probe(value T) Probe[T] {
	return func(element T) compare.Result {
		return sortable.Compare(value, element)
	}
}
