package pinlist

// NodeUtilization reports the arena's current occupancy (spec.md §6).
type NodeUtilization struct {
	NumActive int
	NumClosed int
}

// Total is the number of slots currently allocated in the arena,
// active plus closed.
func (u NodeUtilization) Total() int { return u.NumActive + u.NumClosed }

// Ratio returns num_active/total, the fraction of slots currently
// holding a live element. Returns 1 for an empty, never-grown arena.
func (u NodeUtilization) Ratio() float64 {
	total := u.Total()
	if total == 0 {
		return 1
	}
	return float64(u.NumActive) / float64(total)
}
