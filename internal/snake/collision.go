package snake

// foodAt returns the index of the food item at p, or -1.
func (e *Engine) foodAt(p Position) int {
	for i, f := range e.state.Food {
		if f.Position == p {
			return i
		}
	}
	return -1
}

// deadlyCollision reports whether the head shares a cell with any other
// segment. It runs after the trim, so a tail that moved away this step is
// no longer in the way.
func (e *Engine) deadlyCollision(s *Snake) bool {
	head := s.Head().Position
	for _, seg := range s.Segments[:len(s.Segments)-1] {
		if seg.Position == head {
			return true
		}
	}
	return false
}
