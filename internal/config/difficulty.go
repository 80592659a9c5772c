package config

import (
	"math"
	"time"
)

// DifficultyParams are the per-tick values derived from the current score.
type DifficultyParams struct {
	Level           int           // floor(score / level_every)
	HorizontalSpeed int           // Obstacle x delta per tick (negative = left)
	GapSize         int           // Vertical opening of newly spawned pairs
	SpawnInterval   time.Duration // Period between pair spawns
}

// Difficulty derives DifficultyParams from a score. It holds no state besides
// its configuration, so the same score always yields the same parameters.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a difficulty calculator.
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	return Difficulty{cfg: cfg}
}

// Level returns the speed level for a score.
func (d Difficulty) Level(score float64) int {
	if d.cfg.LevelEvery <= 0 || score <= 0 {
		return 0
	}
	return int(math.Floor(score / d.cfg.LevelEvery))
}

// Params returns speed, gap and spawn interval for a score, each clamped to
// its configured floor.
func (d Difficulty) Params(score float64) DifficultyParams {
	level := d.Level(score)

	speed := max(d.cfg.SpeedCap, d.cfg.BaseSpeed-level)
	gap := max(d.cfg.GapFloor, d.cfg.BaseGap-level*d.cfg.GapStep)
	intervalMs := max(d.cfg.IntervalFloorMs, d.cfg.BaseIntervalMs-level*d.cfg.IntervalStepMs)

	return DifficultyParams{
		Level:           level,
		HorizontalSpeed: speed,
		GapSize:         gap,
		SpawnInterval:   time.Duration(intervalMs) * time.Millisecond,
	}
}

// Initial returns the parameters at score zero.
func (d Difficulty) Initial() DifficultyParams {
	return d.Params(0)
}
