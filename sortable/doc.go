// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so they can be stored in sorted sequences ordered by
// the type's own LessThan method.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/amp-sorted/compare.Comparable]
// with a LessThan method. Any type implementing it can be ordered with
// [github.com/amp-labs/amp-sorted/ordering.OfSortable]:
//
//	seq := sorted.New(ordering.OfSortable[sortable.Int]())
//	seq.Insert(sortable.Int(42), sorted.Last)
//	seq.Insert(sortable.Int(10), sorted.Last)
//	// seq.Values() == []sortable.Int{10, 42}
//
// # Creating Custom Sortable Types
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//
//	    return j.Name < other.Name
//	}
//
// LessThan must be a strict weak ordering. Equals is not consulted for
// ordering; two values neither of which is LessThan the other sort together.
//
// # Thread Safety
//
// The wrapper types are plain values and safe to share. Sequences holding them
// are not synchronized.
package sortable
