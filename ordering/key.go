package ordering

import (
	"cmp"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/compare"
)

type keyed[T any, K any] struct {
	key         func(T) K
	compareKeys func(a, b K) int
}

// ByKey orders values by the natural order of a derived key. The key function
// must be deterministic; it is called lazily, once per element per comparison,
// and once per probe for the probed value.
func ByKey[T any, K cmp.Ordered](key func(T) K) Strategy[T] { //nolint:ireturn
	return ByKeyFunc(key, cmp.Compare[K])
}

// ByKeyFunc orders values by a derived key compared with compareKeys, which
// follows the cmp.Compare convention.
func ByKeyFunc[T any, K any](key func(T) K, compareKeys func(a, b K) int) Strategy[T] { //nolint:ireturn
	assert.True(key != nil, "ordering: ByKeyFunc called with a nil key function")
	assert.True(compareKeys != nil, "ordering: ByKeyFunc called with a nil compare function")

	return keyed[T, K]{key: key, compareKeys: compareKeys}
}

func (k keyed[T, K]) Compare(a, b T) compare.Result {
	return compare.Of(k.compareKeys(k.key(a), k.key(b)))
}

func (k keyed[T, K]) Probe(value T) Probe[T] {
	valueKey := k.key(value)

	return func(element T) compare.Result {
		return compare.Of(k.compareKeys(valueKey, k.key(element)))
	}
}
