// Package compare provides the three-way comparison result shared by every
// ordering strategy, plus the equality interface used by sortable types.
package compare

import "fmt"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Result is the outcome of comparing a value against another under some ordering.
// The zero value is Same.
type Result int8

const (
	// Before means the left-hand value sorts strictly ahead of the right-hand one.
	Before Result = -1
	// Same means neither value sorts ahead of the other (they are equivalent, not
	// necessarily identical).
	Same Result = 0
	// After means the left-hand value sorts strictly behind the right-hand one.
	After Result = 1
)

// Of converts a conventional integer comparison (negative, zero, positive), as
// returned by cmp.Compare, strings.Compare or bytes.Compare, into a Result.
func Of(c int) Result {
	switch {
	case c < 0:
		return Before
	case c > 0:
		return After
	default:
		return Same
	}
}

// Int converts the Result back into the -1/0/+1 convention expected by
// slices.SortFunc and friends.
func (r Result) Int() int {
	return int(r)
}

// Invert swaps Before and After. Same stays Same.
func (r Result) Invert() Result {
	return -r
}

// String returns a human-readable name for the Result.
func (r Result) String() string {
	switch r {
	case Before:
		return "before"
	case Same:
		return "same"
	case After:
		return "after"
	default:
		return fmt.Sprintf("Result(%d)", int8(r))
	}
}
