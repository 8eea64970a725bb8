package arenalist

// Utilization returns the ratio of occupied slots to capacity (0.0 to 1.0).
// Returns 0.0 if the list has no capacity.
func (l *List[T]) Utilization() float64 {
	if len(l.slots) == 0 {
		return 0
	}
	return float64(l.length) / float64(len(l.slots))
}

// Metrics returns a snapshot of list statistics.
func (l *List[T]) Metrics() ListMetrics {
	return ListMetrics{
		Len:         l.Len(),
		Capacity:    l.Cap(),
		Free:        l.Free(),
		Utilization: l.Utilization(),
		Pushes:      l.pushes,
		Rejected:    l.rejected,
	}
}

// ListMetrics contains statistical information about a list.
type ListMetrics struct {
	Len         int     // Occupied slots
	Capacity    int     // Total slots in the arena
	Free        int     // Slots left on the free chain
	Utilization float64 // Ratio of occupied slots to capacity (0.0-1.0)
	Pushes      int     // Successful PushFront calls since New or Reset
	Rejected    int     // PushFront calls refused because the arena was full
}
