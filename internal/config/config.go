// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all startup configuration for the game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Food       FoodConfig       `yaml:"food"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FoodConfig defines the food supply.
type FoodConfig struct {
	InitialCount int `yaml:"initial_count"`
}

// SimulationConfig defines the simulation cadence.
type SimulationConfig struct {
	StepsPerSecond int `yaml:"steps_per_second"`
}

// Validate reports every setting the engine cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 {
		errs = append(errs, fmt.Errorf("grid.width must be positive, got %d", c.Grid.Width))
	}
	if c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid.height must be positive, got %d", c.Grid.Height))
	}
	if c.Food.InitialCount < 0 {
		errs = append(errs, fmt.Errorf("food.initial_count must not be negative, got %d", c.Food.InitialCount))
	}
	if c.Simulation.StepsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("simulation.steps_per_second must be positive, got %d", c.Simulation.StepsPerSecond))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}
