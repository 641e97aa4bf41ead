package sortable

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return i < other
}

// Int64 is a sortable wrapper type for int64, typically used for ids and
// unix timestamps.
type Int64 int64

var _ Sortable[Int64] = (*Int64)(nil)

func (i Int64) Equals(other Int64) bool {
	return i == other
}

func (i Int64) LessThan(other Int64) bool {
	return i < other
}
