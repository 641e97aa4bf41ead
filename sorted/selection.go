package sorted

import "fmt"

// Selection chooses among several equal elements during a search.
type Selection uint8

const (
	// First selects the lowest index whose element is not before the value:
	// the leftmost insertion point.
	First Selection = iota

	// Last selects the lowest index whose element is after the value: the
	// rightmost insertion point, one past the last equal element.
	Last

	// Any selects whichever equal element the search reaches first, or the
	// insertion point if there is none. Which of several equal indices is
	// returned is unspecified and may change between releases.
	Any
)

// String returns the lowercase name of the Selection.
func (s Selection) String() string {
	switch s {
	case First:
		return "first"
	case Last:
		return "last"
	case Any:
		return "any"
	default:
		return fmt.Sprintf("Selection(%d)", uint8(s))
	}
}
