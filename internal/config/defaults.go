package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration: a 75x40 grid,
// 20 food items and 12 steps per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  75,
			Height: 40,
		},
		Food: FoodConfig{
			InitialCount: 20,
		},
		Simulation: SimulationConfig{
			StepsPerSecond: 12,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
