package sorted

// Stats counts the work a Sequence has done since it was created or its
// stats were last reset.
type Stats struct {
	// Comparisons is the number of strategy comparisons made by searches and
	// placement checks.
	Comparisons uint64

	// Moves is the number of existing elements shifted to open or close a gap.
	// Writing the inserted or replacing value itself is not counted.
	Moves uint64
}

// Add returns the element-wise sum of two Stats.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Comparisons: s.Comparisons + other.Comparisons,
		Moves:       s.Moves + other.Moves,
	}
}

// Sub returns the element-wise difference s - other. It is meant for deltas
// between two snapshots of the same sequence, where other is the older one.
func (s Stats) Sub(other Stats) Stats {
	return Stats{
		Comparisons: s.Comparisons - other.Comparisons,
		Moves:       s.Moves - other.Moves,
	}
}
