package config

import (
	"testing"
	"time"
)

func TestDifficultyParams(t *testing.T) {
	d := NewDifficulty(Default().Difficulty)

	tests := []struct {
		name     string
		score    float64
		level    int
		speed    int
		gap      int
		interval time.Duration
	}{
		{"start", 0, 0, -4, 160, 1500 * time.Millisecond},
		{"half pair", 0.5, 0, -4, 160, 1500 * time.Millisecond},
		{"just below first tier", 4.5, 0, -4, 160, 1500 * time.Millisecond},
		{"first tier", 5, 1, -5, 150, 1400 * time.Millisecond},
		{"score twelve", 12, 2, -6, 140, 1300 * time.Millisecond},
		{"just below tier five", 24.9, 4, -8, 120, 1100 * time.Millisecond},
		{"tier five", 25, 5, -9, 110, 1000 * time.Millisecond},
		{"gap reaches floor", 30, 6, -10, 100, 900 * time.Millisecond},
		{"interval reaches floor", 35, 7, -10, 100, 800 * time.Millisecond},
		{"far past every floor", 500, 100, -10, 100, 800 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := d.Params(tc.score)
			if p.Level != tc.level {
				t.Errorf("Level = %d, expected %d", p.Level, tc.level)
			}
			if p.HorizontalSpeed != tc.speed {
				t.Errorf("HorizontalSpeed = %d, expected %d", p.HorizontalSpeed, tc.speed)
			}
			if p.GapSize != tc.gap {
				t.Errorf("GapSize = %d, expected %d", p.GapSize, tc.gap)
			}
			if p.SpawnInterval != tc.interval {
				t.Errorf("SpawnInterval = %v, expected %v", p.SpawnInterval, tc.interval)
			}
		})
	}
}

func TestDifficultyIsPure(t *testing.T) {
	d := NewDifficulty(Default().Difficulty)

	first := d.Params(17)
	d.Params(400)
	d.Params(0)
	if again := d.Params(17); again != first {
		t.Errorf("Params(17) changed between calls: %+v vs %+v", first, again)
	}
	if d.Initial() != d.Params(0) {
		t.Error("Initial() should equal Params(0)")
	}
}

func TestDifficultyGapNeverBelowFloor(t *testing.T) {
	cfg := Default().Difficulty
	d := NewDifficulty(cfg)

	for score := 0.0; score < 200; score += 0.5 {
		if gap := d.Params(score).GapSize; gap < cfg.GapFloor {
			t.Fatalf("gap %d below floor %d at score %g", gap, cfg.GapFloor, score)
		}
	}
}
