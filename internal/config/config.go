// Package config provides YAML-based game configuration loading and
// the gap-size policy for Flappy Dragon.
package config

import (
	"errors"
	"fmt"
)

// DragonConfig contains all configuration for Flappy Dragon.
type DragonConfig struct {
	Field     DragonField     `yaml:"field"`
	Physics   DragonPhysics   `yaml:"physics"`
	Player    DragonPlayer    `yaml:"player"`
	Obstacles DragonObstacles `yaml:"obstacles"`
}

// DragonField defines the size of the play field in cells.
type DragonField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DragonPhysics defines physics parameters for the dragon.
type DragonPhysics struct {
	FrameDurationMS  float64 `yaml:"frame_duration_ms"` // Accumulated time per physics tick
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	FlapVelocity     float64 `yaml:"flap_velocity"` // Negative = up
}

// DragonPlayer defines where a fresh dragon starts.
type DragonPlayer struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// DragonObstacles defines obstacle generation parameters.
type DragonObstacles struct {
	GapBandMin     int `yaml:"gap_band_min"` // Inclusive
	GapBandMax     int `yaml:"gap_band_max"` // Exclusive
	BaseGapSize    int `yaml:"base_gap_size"`
	MinGapSize     int `yaml:"min_gap_size"`
	ShrinkPerPoint int `yaml:"shrink_per_point"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate reports the first setting that would make the game unplayable.
func (c DragonConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Physics.FrameDurationMS <= 0:
		return fmt.Errorf("%w: frame_duration_ms must be positive, got %v", ErrInvalidConfig, c.Physics.FrameDurationMS)
	case c.Physics.TerminalVelocity <= 0:
		return fmt.Errorf("%w: terminal_velocity must be positive, got %v", ErrInvalidConfig, c.Physics.TerminalVelocity)
	case c.Obstacles.GapBandMax <= c.Obstacles.GapBandMin:
		return fmt.Errorf("%w: gap band [%d, %d) is empty", ErrInvalidConfig, c.Obstacles.GapBandMin, c.Obstacles.GapBandMax)
	case c.Obstacles.GapBandMin < 0 || c.Obstacles.GapBandMax > c.Field.Height:
		return fmt.Errorf("%w: gap band [%d, %d) is outside the field", ErrInvalidConfig, c.Obstacles.GapBandMin, c.Obstacles.GapBandMax)
	case c.Obstacles.MinGapSize < 1:
		return fmt.Errorf("%w: min_gap_size must be at least 1, got %d", ErrInvalidConfig, c.Obstacles.MinGapSize)
	case c.Obstacles.ShrinkPerPoint < 0:
		return fmt.Errorf("%w: shrink_per_point must not be negative, got %d", ErrInvalidConfig, c.Obstacles.ShrinkPerPoint)
	}
	return nil
}
