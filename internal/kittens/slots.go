package kittens

// laneSlots is a fixed-capacity map from lane index to an optional entity.
type laneSlots[E any] struct {
	slots []*E
	live  int
}

func newLaneSlots[E any](lanes int) laneSlots[E] {
	return laneSlots[E]{slots: make([]*E, lanes)}
}

// Lanes returns the capacity.
func (s *laneSlots[E]) Lanes() int {
	return len(s.slots)
}

// Len returns the number of occupied lanes.
func (s *laneSlots[E]) Len() int {
	return s.live
}

// Occupied reports whether lane i holds an entity.
func (s *laneSlots[E]) Occupied(i int) bool {
	return s.slots[i] != nil
}

// Get returns the entity in lane i, or nil.
func (s *laneSlots[E]) Get(i int) *E {
	return s.slots[i]
}

// Put stores e in lane i, replacing any previous occupant.
func (s *laneSlots[E]) Put(i int, e *E) {
	if s.slots[i] == nil && e != nil {
		s.live++
	} else if s.slots[i] != nil && e == nil {
		s.live--
	}
	s.slots[i] = e
}

// Remove empties lane i.
func (s *laneSlots[E]) Remove(i int) {
	s.Put(i, nil)
}

// Each calls fn for every occupied lane in order. fn may remove the current lane.
func (s *laneSlots[E]) Each(fn func(lane int, e *E)) {
	for i, e := range s.slots {
		if e != nil {
			fn(i, e)
		}
	}
}
