package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Target:               2048,
		SpawnFourProbability: 0.1,
		MoveCooldownMS:       200,
	}
}

// DefaultTetrisConfig returns the default falling-block configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		GravityMS: 500,
		LineScore: 100,
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		TickMS:    180,
		FoodScore: 10,
	}
}
