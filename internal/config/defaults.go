package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the default Flappy Dragon configuration.
// It mirrors defaults/dragon.yaml.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		Field: DragonField{
			Width:  80,
			Height: 50,
		},
		Physics: DragonPhysics{
			FrameDurationMS:  75,
			Gravity:          0.2,
			TerminalVelocity: 2.0,
			FlapVelocity:     -2.0,
		},
		Player: DragonPlayer{
			StartX: 5,
			StartY: 25,
		},
		Obstacles: DragonObstacles{
			GapBandMin:     10,
			GapBandMax:     40,
			BaseGapSize:    20,
			MinGapSize:     2,
			ShrinkPerPoint: 1,
		},
	}
}
