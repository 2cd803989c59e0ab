// Package snake implements the simulation engine for a single-player snake
// game on a toroidal grid. It has no terminal or timing dependencies; the
// platform layer decides when Step runs and how the state is drawn.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
)

// Engine owns the game state and advances it one step at a time.
// It is not safe for concurrent use; the driver serializes all calls.
type Engine struct {
	width  int
	height int
	rng    *rand.Rand
	steps  uint64

	stats Stats
	state State
}

// New creates an engine with a single head segment at the grid center and
// seeds cfg.InitialFood food items.
func New(cfg Config) *Engine {
	e := &Engine{
		width:  cfg.Width,
		height: cfg.Height,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}

	e.state.Player = Snake{
		Length: 1,
		Segments: []Segment{{
			Position: Position{X: cfg.Width / 2, Y: cfg.Height / 2},
			Role:     RoleHead,
			Facing:   DirRight,
		}},
	}

	// An empty grid has nowhere to move.
	if cfg.Width <= 0 || cfg.Height <= 0 {
		e.stats.GameOver = true
		return e
	}

	for range cfg.InitialFood {
		e.placeFood()
	}

	return e
}

// Width returns the grid width in cells.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the grid height in cells.
func (e *Engine) Height() int {
	return e.height
}

// Step advances the simulation by one cell. It does nothing while paused or
// after the game has ended.
func (e *Engine) Step() {
	if e.stats.Paused || e.stats.GameOver {
		return
	}
	e.steps++

	player := &e.state.Player
	e.advance(player)

	// Growth shows up on the next step: Length is raised after this step's trim.
	if i := e.foodAt(player.Head().Position); i >= 0 {
		e.consume(player, i)
		e.placeFood()
	}

	if e.deadlyCollision(player) {
		e.stats.GameOver = true
	}
}

// advance appends the new head, trims the oldest segments down to Length
// and re-tags the roles.
func (e *Engine) advance(s *Snake) {
	head := s.Head()
	head.Position = e.move(head.Position, head.Facing)
	head.Role = RoleHead
	s.Segments = append(s.Segments, head)

	if excess := len(s.Segments) - s.Length; excess > 0 {
		s.Segments = append(s.Segments[:0], s.Segments[excess:]...)
	}

	if len(s.Segments) > 1 {
		s.Segments[0].Role = RoleTail
		for i := 1; i < len(s.Segments)-1; i++ {
			s.Segments[i].Role = RoleBody
		}
	}
}

// move returns p shifted one cell towards d, wrapping at the grid edges.
func (e *Engine) move(p Position, d Direction) Position {
	switch d {
	case DirUp:
		p.Y--
	case DirDown:
		p.Y++
	case DirLeft:
		p.X--
	case DirRight:
		p.X++
	}
	p.X = wrap(p.X, e.width)
	p.Y = wrap(p.Y, e.height)
	return p
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// consume eats the food item at index i.
func (e *Engine) consume(s *Snake, i int) {
	s.Length++
	e.stats.Score++
	e.state.Food = append(e.state.Food[:i], e.state.Food[i+1:]...)
}

// Turn sets the head's facing unless d would reverse the snake onto itself.
// Accepted in every state; it only becomes visible on the next step.
func (e *Engine) Turn(d Direction) {
	head := &e.state.Player.Segments[len(e.state.Player.Segments)-1]
	if d == head.Facing.Opposite() {
		return
	}
	head.Facing = d
}

// Up turns the snake upwards.
func (e *Engine) Up() { e.Turn(DirUp) }

// Right turns the snake to the right.
func (e *Engine) Right() { e.Turn(DirRight) }

// Down turns the snake downwards.
func (e *Engine) Down() { e.Turn(DirDown) }

// Left turns the snake to the left.
func (e *Engine) Left() { e.Turn(DirLeft) }

// TogglePause flips the paused flag. It is accepted after game over too,
// where it has no effect on stepping.
func (e *Engine) TogglePause() {
	e.stats.Paused = !e.stats.Paused
}

// Stats returns the current score and flags.
func (e *Engine) Stats() Stats {
	return e.stats
}

// State returns a copy of the playfield. Callers may keep or modify it
// without affecting the engine.
func (e *Engine) State() State {
	return State{
		Player: Snake{
			Length:   e.state.Player.Length,
			Segments: append([]Segment(nil), e.state.Player.Segments...),
		},
		Food: append([]Food(nil), e.state.Food...),
	}
}

// Status reports the state-machine state. Game over wins over pause.
func (e *Engine) Status() Status {
	switch {
	case e.stats.GameOver:
		return StatusGameOver
	case e.stats.Paused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.stats.GameOver
}

// DebugState returns a string representation of the game state.
func (e *Engine) DebugState() string {
	head := e.state.Player.Head()
	var b strings.Builder
	fmt.Fprintf(&b, "Step: %d, Score: %d, Status: %s\n", e.steps, e.stats.Score, e.Status())
	fmt.Fprintf(&b, "Snake len: %d/%d, Facing: %s\n", len(e.state.Player.Segments), e.state.Player.Length, head.Facing)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: %d\n", head.Position.X, head.Position.Y, len(e.state.Food))
	return b.String()
}
