// Package config provides YAML-based configuration loading for the chomp
// game: arena geometry, player and food parameters, and simulation timing.
package config

import (
	"errors"
	"fmt"
)

// ChompConfig contains all tunable parameters of the game.
type ChompConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Player PlayerConfig `yaml:"player"`
	Food   FoodConfig   `yaml:"food"`
	Timing TimingConfig `yaml:"timing"`
}

// ArenaConfig defines the world-coordinate boundaries and wall thickness.
// Left/Right/Bottom/Top are the wall center lines; the walls extend half a
// thickness to each side of them.
type ArenaConfig struct {
	Left          float64 `yaml:"left"`
	Right         float64 `yaml:"right"`
	Bottom        float64 `yaml:"bottom"`
	Top           float64 `yaml:"top"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// Width returns the distance between the left and right wall center lines.
func (a ArenaConfig) Width() float64 {
	return a.Right - a.Left
}

// Height returns the distance between the bottom and top wall center lines.
func (a ArenaConfig) Height() float64 {
	return a.Top - a.Bottom
}

// VecConfig is a 2D vector in YAML form.
type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerConfig defines the player rectangle and movement parameters.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	// InitialDirection is normalized and scaled by Speed to form the
	// player's starting velocity vector.
	InitialDirection VecConfig `yaml:"initial_direction"`
	// BoundsShrink is the divisor applied to the player extent when
	// computing the movement clamp (extent / shrink on each side).
	BoundsShrink float64 `yaml:"bounds_shrink"`
}

// FoodConfig defines the food rectangle. Spawn and respawn positions are
// drawn uniformly from the arena range.
type FoodConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines the fixed-timestep simulation rate.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// Validate checks the configuration for fatal misconfiguration.
// An invalid config aborts startup; there is no partial start.
func (c ChompConfig) Validate() error {
	var errs []error

	if c.Arena.Width() <= 0 {
		errs = append(errs, fmt.Errorf("arena width must be positive, got %.1f (left=%.1f right=%.1f)",
			c.Arena.Width(), c.Arena.Left, c.Arena.Right))
	}
	if c.Arena.Height() <= 0 {
		errs = append(errs, fmt.Errorf("arena height must be positive, got %.1f (bottom=%.1f top=%.1f)",
			c.Arena.Height(), c.Arena.Bottom, c.Arena.Top))
	}
	if c.Arena.WallThickness <= 0 {
		errs = append(errs, fmt.Errorf("wall thickness must be positive, got %.1f", c.Arena.WallThickness))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %.1fx%.1f", c.Player.Width, c.Player.Height))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive, got %.1f", c.Player.Speed))
	}
	if c.Player.InitialDirection.X == 0 && c.Player.InitialDirection.Y == 0 {
		errs = append(errs, errors.New("player initial_direction must be non-zero"))
	}
	if c.Player.BoundsShrink <= 0 {
		errs = append(errs, fmt.Errorf("player bounds_shrink must be positive, got %.2f", c.Player.BoundsShrink))
	}
	if c.Food.Width <= 0 || c.Food.Height <= 0 {
		errs = append(errs, fmt.Errorf("food size must be positive, got %.1fx%.1f", c.Food.Width, c.Food.Height))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Timing.TickRate))
	}

	return errors.Join(errs...)
}
