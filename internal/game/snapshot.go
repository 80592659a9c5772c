package game

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Snapshot is a read-only copy of everything the presentation layer draws.
// It shares no memory with the machine.
type Snapshot struct {
	Tick       uint64
	State      State
	Paused     bool
	BoardW     int
	BoardH     int
	Player     core.Rect
	VelocityY  int
	Obstacles  []Obstacle
	Score      float64
	HighScore  float64
	Difficulty config.DifficultyParams
}

// Snapshot returns the current state for drawing and tests.
func (m *Machine) Snapshot() Snapshot {
	obstacles := make([]Obstacle, m.world.Lane.Len())
	copy(obstacles, m.world.Lane.Obstacles())

	return Snapshot{
		Tick:       m.world.Ticks,
		State:      m.state,
		Paused:     m.state == StatePaused,
		BoardW:     m.cfg.Board.Width,
		BoardH:     m.cfg.Board.Height,
		Player:     m.world.Player.Rect(),
		VelocityY:  m.world.Player.VelocityY,
		Obstacles:  obstacles,
		Score:      m.world.Score,
		HighScore:  m.world.HighScore,
		Difficulty: m.world.Params,
	}
}
