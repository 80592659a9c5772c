package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded yaml and Default() differ:\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 2\ndifficulty:\n  gap_floor: 120\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 2 {
		t.Errorf("Gravity = %d, expected 2", cfg.Physics.Gravity)
	}
	if cfg.Difficulty.GapFloor != 120 {
		t.Errorf("GapFloor = %d, expected 120", cfg.Difficulty.GapFloor)
	}
	// Keys absent from the file keep their defaults
	if cfg.Physics.FlapVelocity != -9 || cfg.Board.Height != 640 {
		t.Errorf("unset keys should keep defaults, got flap=%d height=%d",
			cfg.Physics.FlapVelocity, cfg.Board.Height)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("difficulty:\n  gap_floor: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of out-of-range config = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero board", func(c *FlappyConfig) { c.Board.Width = 0 }},
		{"zero player", func(c *FlappyConfig) { c.Player.Height = 0 }},
		{"upward gravity", func(c *FlappyConfig) { c.Physics.Gravity = -1 }},
		{"downward flap", func(c *FlappyConfig) { c.Physics.FlapVelocity = 3 }},
		{"cap slower than base", func(c *FlappyConfig) { c.Difficulty.SpeedCap = -2 }},
		{"gap floor above base", func(c *FlappyConfig) { c.Difficulty.GapFloor = 200 }},
		{"interval floor zero", func(c *FlappyConfig) { c.Difficulty.IntervalFloorMs = 0 }},
		{"level_every zero", func(c *FlappyConfig) { c.Difficulty.LevelEvery = 0 }},
		{"pass unit zero", func(c *FlappyConfig) { c.Scoring.PassUnit = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestMarshalParses(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != Default() {
		t.Error("marshalled default config does not parse back to Default()")
	}
}
