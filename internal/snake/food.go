package snake

// placeFood puts one food item on a random free cell. The start cell is drawn
// uniformly from the flattened grid and the scan walks forward from it,
// wrapping at the end, so every cell is checked exactly once. A grid with no
// free cell ends the game and leaves the food untouched.
func (e *Engine) placeFood() {
	cells := e.width * e.height
	if cells <= 0 {
		e.stats.GameOver = true
		return
	}

	occupied := e.occupancy()
	start := e.rng.Intn(cells)
	for i := range cells {
		idx := (start + i) % cells
		if occupied[idx] {
			continue
		}
		e.state.Food = append(e.state.Food, Food{Position: e.positionOf(idx)})
		return
	}

	// Snake and food cover every cell.
	e.stats.GameOver = true
}

// occupancy marks every cell holding a snake segment or a food item.
func (e *Engine) occupancy() []bool {
	occupied := make([]bool, e.width*e.height)
	for _, seg := range e.state.Player.Segments {
		occupied[e.indexOf(seg.Position)] = true
	}
	for _, f := range e.state.Food {
		occupied[e.indexOf(f.Position)] = true
	}
	return occupied
}

func (e *Engine) indexOf(p Position) int {
	return p.Y*e.width + p.X
}

func (e *Engine) positionOf(idx int) Position {
	return Position{X: idx % e.width, Y: idx / e.width}
}
