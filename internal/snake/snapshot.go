package snake

// Snapshot captures the engine state for determinism testing and replay.
type Snapshot struct {
	Step      uint64
	Score     int
	Length    int // target length, may be one ahead of Segments right after eating
	Segments  int
	HeadX     int
	HeadY     int
	Facing    Direction
	FoodCount int
	Status    Status
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	head := e.state.Player.Head()
	return Snapshot{
		Step:      e.steps,
		Score:     e.stats.Score,
		Length:    e.state.Player.Length,
		Segments:  len(e.state.Player.Segments),
		HeadX:     head.Position.X,
		HeadY:     head.Position.Y,
		Facing:    head.Facing,
		FoodCount: len(e.state.Food),
		Status:    e.Status(),
	}
}
