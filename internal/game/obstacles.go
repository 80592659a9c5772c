package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Role tells the two halves of an obstacle pair apart.
type Role int

const (
	RoleTop Role = iota
	RoleBottom
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleTop:
		return "Top"
	case RoleBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Obstacle is one pipe. Pipes come in Top/Bottom pairs around a single gap.
type Obstacle struct {
	X, Y          int
	Width, Height int
	Role          Role
	Passed        bool // Set once the player's left edge is past the right edge
}

// Rect returns the obstacle's hitbox.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Lane owns the obstacles on the board: spawning, movement, scoring marks
// and eviction.
type Lane struct {
	obstacles []Obstacle
	rng       *rand.Rand
	width     int
	height    int
	spawnX    int
}

// NewLane creates an empty lane with the given RNG seed.
func NewLane(seed int64, cfg config.ObstacleConfig) *Lane {
	return &Lane{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rand.New(rand.NewSource(seed)),
		width:     cfg.Width,
		height:    cfg.Height,
		spawnX:    cfg.SpawnX,
	}
}

// Clear removes all obstacles and keeps the RNG sequence.
func (l *Lane) Clear() {
	l.obstacles = l.obstacles[:0]
}

// SpawnPair appends a Top and a Bottom obstacle at the spawn column.
// Top's y is drawn from (-(3/4)h, -h/4]; Bottom starts gap pixels below Top's end.
func (l *Lane) SpawnPair(gap int) (top, bottom Obstacle) {
	topY := int(float64(-l.height/4) - l.rng.Float64()*float64(l.height/2))

	top = Obstacle{
		X:      l.spawnX,
		Y:      topY,
		Width:  l.width,
		Height: l.height,
		Role:   RoleTop,
	}
	bottom = Obstacle{
		X:      l.spawnX,
		Y:      topY + l.height + gap,
		Width:  l.width,
		Height: l.height,
		Role:   RoleBottom,
	}

	l.obstacles = append(l.obstacles, top, bottom)
	return top, bottom
}

// Advance shifts every obstacle horizontally by dx (negative = left).
func (l *Lane) Advance(dx int) {
	for i := range l.obstacles {
		l.obstacles[i].X += dx
	}
}

// MarkPassed flags obstacles whose right edge the player has cleared and
// returns how many were newly passed. Each obstacle is counted once.
func (l *Lane) MarkPassed(playerX int) int {
	passed := 0
	for i := range l.obstacles {
		o := &l.obstacles[i]
		if !o.Passed && playerX > o.X+o.Width {
			o.Passed = true
			passed++
		}
	}
	return passed
}

// Collides reports whether r overlaps any obstacle.
func (l *Lane) Collides(r core.Rect) bool {
	for _, o := range l.obstacles {
		if Intersects(r, o) {
			return true
		}
	}
	return false
}

// Evict drops obstacles that are fully past the left edge and returns how
// many were removed.
func (l *Lane) Evict() int {
	kept := l.obstacles[:0]
	for _, o := range l.obstacles {
		if o.X+o.Width >= 0 {
			kept = append(kept, o)
		}
	}
	removed := len(l.obstacles) - len(kept)
	l.obstacles = kept
	return removed
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (l *Lane) Obstacles() []Obstacle {
	return l.obstacles
}

// Len returns the number of live obstacles.
func (l *Lane) Len() int {
	return len(l.obstacles)
}
