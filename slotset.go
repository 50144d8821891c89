package vgrid

// SlotSet assigns column indices to a small set of stable rendering slots.
// A column keeps its slot for as long as it is tracked, so scrolling reuses
// view elements instead of recreating them. When the set is full, the
// column furthest outside the current window is evicted and its slot
// recycled. The policy is spatial locality, not LRU.
type SlotSet struct {
	values []int       // slot -> column index
	index  map[int]int // column index -> slot
}

// NewSlotSet creates an empty slot set.
func NewSlotSet() *SlotSet {
	return &SlotSet{index: make(map[int]int)}
}

// Len returns the number of tracked columns.
func (s *SlotSet) Len() int {
	return len(s.values)
}

// Position returns the slot currently assigned to the column, if any.
func (s *SlotSet) Position(column int) (int, bool) {
	slot, ok := s.index[column]
	return slot, ok
}

// Assign allocates a fresh slot for the column and returns it.
// The column must not already be tracked.
func (s *SlotSet) Assign(column int) int {
	slot := len(s.values)
	s.values = append(s.values, column)
	s.index[column] = slot
	return slot
}

// ReplaceFurthest evicts the tracked column that lies furthest outside the
// closed window [low, high] and hands its slot to the given column.
// Distance is index-distance beyond the nearer window edge. Reports false
// when every tracked column lies inside the window, in which case nothing
// changes. Ties go to the lowest slot, keeping the choice deterministic.
func (s *SlotSet) ReplaceFurthest(low, high, column int) (int, bool) {
	bestSlot, bestDist := -1, 0
	for slot, v := range s.values {
		dist := 0
		switch {
		case v < low:
			dist = low - v
		case v > high:
			dist = v - high
		}
		if dist > bestDist {
			bestSlot, bestDist = slot, dist
		}
	}
	if bestSlot < 0 {
		return 0, false
	}
	delete(s.index, s.values[bestSlot])
	s.values[bestSlot] = column
	s.index[column] = bestSlot
	return bestSlot, true
}

// Reset forgets every assignment. Used when the column set itself changes.
func (s *SlotSet) Reset() {
	s.values = s.values[:0]
	clear(s.index)
}
