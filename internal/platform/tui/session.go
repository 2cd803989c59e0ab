package tui

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/interval"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// session pairs one engine with the scheduler that steps it.
// A reset replaces both.
type session struct {
	engine    *snake.Engine
	scheduler *interval.Scheduler
	seed      int64
}

func newSession(cfg config.SnakeConfig, seed int64, clock interval.Clock, warn interval.Warner) *session {
	engine := snake.New(snake.Config{
		Width:       cfg.Grid.Width,
		Height:      cfg.Grid.Height,
		InitialFood: cfg.Food.InitialCount,
		Seed:        seed,
	})
	scheduler := interval.New(
		interval.IntervalForRate(cfg.Simulation.StepsPerSecond),
		engine.Step,
		interval.WithClock(clock),
		interval.WithWarner(warn),
	)
	return &session{engine: engine, scheduler: scheduler, seed: seed}
}

// frame collects the engine state for drawing.
func (s *session) frame(fps int) Frame {
	return Frame{
		Width:  s.engine.Width(),
		Height: s.engine.Height(),
		State:  s.engine.State(),
		Stats:  s.engine.Stats(),
		FPS:    fps,
	}
}
