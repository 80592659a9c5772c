package game

import "github.com/vovakirdan/tui-flappy/internal/core"

// Intersects reports whether the player box overlaps the obstacle on both
// axes. Shared edges do not count as a hit.
func Intersects(player core.Rect, o Obstacle) bool {
	return player.Intersects(o.Rect())
}
