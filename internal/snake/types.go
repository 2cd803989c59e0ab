package snake

// Direction is the facing of a snake segment.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Role classifies a segment within the snake body.
type Role int

const (
	RoleHead Role = iota
	RoleBody
	RoleTail
)

func (r Role) String() string {
	switch r {
	case RoleHead:
		return "head"
	case RoleBody:
		return "body"
	case RoleTail:
		return "tail"
	default:
		return "unknown"
	}
}

// Position is a cell on the grid.
type Position struct {
	X, Y int
}

// Segment is one occupied cell of the snake.
type Segment struct {
	Position Position
	Role     Role
	Facing   Direction
}

// Snake holds the player's body, ordered oldest (tail) to newest (head).
type Snake struct {
	Length   int
	Segments []Segment
}

// Head returns the newest segment.
func (s Snake) Head() Segment {
	return s.Segments[len(s.Segments)-1]
}

// Food is a single edible item on the grid.
type Food struct {
	Position Position
}

// State is everything a renderer needs to draw the playfield.
type State struct {
	Player Snake
	Food   []Food
}

// Stats is the scoreboard and the run flags.
type Stats struct {
	Score    int
	GameOver bool
	Paused   bool
}

// Status is the engine's state-machine state.
type Status string

const (
	StatusRunning  Status = "running"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game_over"
)

// Config fixes the grid and the initial food supply for one engine.
type Config struct {
	Width       int
	Height      int
	InitialFood int
	Seed        int64 // RNG seed for food placement
}
