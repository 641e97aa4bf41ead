package sortable

import "time"

// Time is a sortable wrapper for time.Time. Ordering and equality are by
// instant, so the same moment in two locations compares as equal.
type Time time.Time

var _ Sortable[Time] = (*Time)(nil)

// Equals reports whether both values represent the same instant.
func (t Time) Equals(other Time) bool {
	return time.Time(t).Equal(time.Time(other))
}

// LessThan reports whether t is strictly earlier than other.
func (t Time) LessThan(other Time) bool {
	return time.Time(t).Before(time.Time(other))
}
