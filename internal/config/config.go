// Package config provides YAML-based game configuration loading and the
// score-driven difficulty derivation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// FlappyConfig contains every tunable constant of the game. All geometry is
// in board pixels.
type FlappyConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// BoardConfig defines the play area.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player sprite's fixed column and hitbox.
type PlayerConfig struct {
	X      int `yaml:"x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines the vertical integration constants.
type PhysicsConfig struct {
	Gravity      int `yaml:"gravity"`       // Velocity added every tick
	FlapVelocity int `yaml:"flap_velocity"` // Velocity set by a flap (negative = up)
}

// ObstacleConfig defines obstacle geometry.
type ObstacleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"` // Left edge of freshly spawned pairs
}

// DifficultyConfig defines how speed, gap and spawn interval follow the score.
type DifficultyConfig struct {
	LevelEvery      float64 `yaml:"level_every"`       // Score per speed level
	BaseSpeed       int     `yaml:"base_speed"`        // Horizontal speed at level 0 (negative = left)
	SpeedCap        int     `yaml:"speed_cap"`         // Most negative speed allowed
	BaseGap         int     `yaml:"base_gap"`          // Gap at level 0
	GapStep         int     `yaml:"gap_step"`          // Gap reduction per level
	GapFloor        int     `yaml:"gap_floor"`         // Smallest gap
	BaseIntervalMs  int     `yaml:"base_interval_ms"`  // Spawn interval at level 0
	IntervalStepMs  int     `yaml:"interval_step_ms"`  // Interval reduction per level
	IntervalFloorMs int     `yaml:"interval_floor_ms"` // Shortest spawn interval
}

// ScoringConfig defines the score awarded per passed obstacle.
type ScoringConfig struct {
	PassUnit float64 `yaml:"pass_unit"`
}

// Validate checks the configuration for values the game cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Board.Width > 0 && c.Board.Height > 0, "board must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Obstacles.Width > 0 && c.Obstacles.Height > 0, "obstacle size must be positive, got %dx%d", c.Obstacles.Width, c.Obstacles.Height)
	check(c.Physics.FlapVelocity < 0, "flap_velocity must be negative, got %d", c.Physics.FlapVelocity)
	check(c.Physics.Gravity > 0, "gravity must be positive, got %d", c.Physics.Gravity)

	d := c.Difficulty
	check(d.LevelEvery > 0, "level_every must be positive, got %g", d.LevelEvery)
	check(d.BaseSpeed < 0, "base_speed must be negative, got %d", d.BaseSpeed)
	check(d.SpeedCap <= d.BaseSpeed, "speed_cap %d must not be slower than base_speed %d", d.SpeedCap, d.BaseSpeed)
	check(d.GapFloor > 0 && d.GapFloor <= d.BaseGap, "gap_floor %d must be in (0, base_gap %d]", d.GapFloor, d.BaseGap)
	check(d.GapStep >= 0, "gap_step must not be negative, got %d", d.GapStep)
	check(d.IntervalFloorMs > 0 && d.IntervalFloorMs <= d.BaseIntervalMs,
		"interval_floor_ms %d must be in (0, base_interval_ms %d]", d.IntervalFloorMs, d.BaseIntervalMs)
	check(d.IntervalStepMs >= 0, "interval_step_ms must not be negative, got %d", d.IntervalStepMs)

	check(c.Scoring.PassUnit > 0, "pass_unit must be positive, got %g", c.Scoring.PassUnit)

	return errors.Join(errs...)
}
