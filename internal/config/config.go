// Package config provides YAML-based game configuration loading for the
// arcade platform. Every game has an embedded default document that can be
// overridden per user or per working directory.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// T2048Config contains all configuration for the 2048 tile-merge game.
type T2048Config struct {
	Target               int     `yaml:"target"`                 // Tile value that wins the game
	SpawnFourProbability float64 `yaml:"spawn_four_probability"` // Chance a spawned tile is 4 instead of 2
	MoveCooldownMS       int     `yaml:"move_cooldown_ms"`       // Window after a move during which moves are dropped
}

// MoveCooldown returns the cooldown window as a duration.
func (c T2048Config) MoveCooldown() time.Duration {
	return time.Duration(c.MoveCooldownMS) * time.Millisecond
}

// Validate checks value ranges.
func (c T2048Config) Validate() error {
	if c.Target < 4 || c.Target&(c.Target-1) != 0 {
		return fmt.Errorf("%w: t2048 target %d is not a power of two >= 4", ErrInvalid, c.Target)
	}
	if c.SpawnFourProbability < 0 || c.SpawnFourProbability > 1 {
		return fmt.Errorf("%w: t2048 spawn_four_probability %v out of [0,1]", ErrInvalid, c.SpawnFourProbability)
	}
	if c.MoveCooldownMS < 0 {
		return fmt.Errorf("%w: t2048 move_cooldown_ms must not be negative", ErrInvalid)
	}
	return nil
}

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	GravityMS int `yaml:"gravity_ms"` // Interval between gravity ticks
	LineScore int `yaml:"line_score"` // Points per cleared line
}

// Gravity returns the gravity interval as a duration.
func (c TetrisConfig) Gravity() time.Duration {
	return time.Duration(c.GravityMS) * time.Millisecond
}

// Validate checks value ranges.
func (c TetrisConfig) Validate() error {
	if c.GravityMS <= 0 {
		return fmt.Errorf("%w: tetris gravity_ms must be positive", ErrInvalid)
	}
	if c.LineScore < 0 {
		return fmt.Errorf("%w: tetris line_score must not be negative", ErrInvalid)
	}
	return nil
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	TickMS    int `yaml:"tick_ms"`    // Interval between movement ticks
	FoodScore int `yaml:"food_score"` // Points per food eaten
}

// Tick returns the movement interval as a duration.
func (c SnakeConfig) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Validate checks value ranges.
func (c SnakeConfig) Validate() error {
	if c.TickMS <= 0 {
		return fmt.Errorf("%w: snake tick_ms must be positive", ErrInvalid)
	}
	if c.FoodScore < 0 {
		return fmt.Errorf("%w: snake food_score must not be negative", ErrInvalid)
	}
	return nil
}
