// Package game implements the side-scrolling flap game: player physics,
// the obstacle lane, collision, scoring and the menu/play/pause/game-over
// state machine. It renders into a core.Screen and knows nothing about the
// terminal.
package game

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player is the flapping sprite. X and the size are fixed; Y and VelocityY
// change every tick.
type Player struct {
	X, Y          int
	Width, Height int
	VelocityY     int // Pixels per tick, negative = up
}

// Rect returns the player's hitbox.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// newPlayer places the player at its start position with no velocity.
func newPlayer(cfg config.PlayerConfig) Player {
	return Player{
		X:      cfg.X,
		Y:      cfg.StartY,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Physics integrates the player's vertical motion.
type Physics struct {
	gravity      int
	flapVelocity int
}

// NewPhysics creates the integrator from config.
func NewPhysics(cfg config.PhysicsConfig) Physics {
	return Physics{
		gravity:      cfg.Gravity,
		flapVelocity: cfg.FlapVelocity,
	}
}

// Integrate applies one tick of gravity and moves the player. Y is clamped at
// the top of the board; there is no lower clamp, falling out is fatal.
func (ph Physics) Integrate(p *Player) {
	p.VelocityY += ph.gravity
	p.Y += p.VelocityY
	if p.Y < 0 {
		p.Y = 0
	}
}

// Flap replaces the accumulated velocity with the launch velocity.
func (ph Physics) Flap(p *Player) {
	p.VelocityY = ph.flapVelocity
}
