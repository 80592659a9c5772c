// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and run bookkeeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameStep caps the time fed to the simulation per frame so a stalled
// terminal does not fast-forward the game.
const maxFrameStep = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages every interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameStep returns the elapsed time between two frames, clamped to
// [0, maxFrameStep].
func frameStep(last, now time.Time) time.Duration {
	dt := now.Sub(last)
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrameStep)
}
