package core

// Intent is a semantic request from the presentation layer, abstracted from
// physical keys and mouse clicks.
type Intent int

const (
	IntentNone        Intent = iota
	IntentStart              // Enter, play button
	IntentFlap               // Space, Up, W
	IntentTogglePause        // P, pause button
	IntentResume             // C, continue button
	IntentLeaveToMenu        // L, Esc, leave button
	IntentRestart            // R after game over
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentStart:
		return "Start"
	case IntentFlap:
		return "Flap"
	case IntentTogglePause:
		return "TogglePause"
	case IntentResume:
		return "Resume"
	case IntentLeaveToMenu:
		return "LeaveToMenu"
	case IntentRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// IntentQueue is a FIFO of intents consumed once per tick.
// It is not safe for concurrent use; the owner serializes access.
type IntentQueue struct {
	items []Intent
}

// Push appends an intent. IntentNone is dropped.
func (q *IntentQueue) Push(i Intent) {
	if i == IntentNone {
		return
	}
	q.items = append(q.items, i)
}

// Drain returns all queued intents in arrival order and empties the queue.
func (q *IntentQueue) Drain() []Intent {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
