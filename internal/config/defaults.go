package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

// Default returns the built-in configuration, matching defaults/flappy.yaml.
func Default() FlappyConfig {
	return FlappyConfig{
		Board: BoardConfig{
			Width:  360,
			Height: 640,
		},
		Player: PlayerConfig{
			X:      360 / 8,
			StartY: 640 / 2,
			Width:  34,
			Height: 24,
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			FlapVelocity: -9,
		},
		Obstacles: ObstacleConfig{
			Width:  64,
			Height: 512,
			SpawnX: 360,
		},
		Difficulty: DifficultyConfig{
			LevelEvery:      5,
			BaseSpeed:       -4,
			SpeedCap:        -10,
			BaseGap:         640 / 4,
			GapStep:         10,
			GapFloor:        100,
			BaseIntervalMs:  1500,
			IntervalStepMs:  100,
			IntervalFloorMs: 800,
		},
		Scoring: ScoringConfig{
			PassUnit: 0.5,
		},
	}
}
