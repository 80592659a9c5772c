package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Flap       key.Binding
	Start      key.Binding
	Pause      key.Binding
	Resume     key.Binding
	Leave      key.Binding
	Restart    key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space/up/w", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Resume: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "continue"),
		),
		Leave: key.NewBinding(
			key.WithKeys("l", "esc"),
			key.WithHelp("l/esc", "leave"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an intent.
// Returns the intent (may be IntentNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (intent core.Intent, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.IntentNone, true
	case key.Matches(msg, km.keys.Flap):
		return core.IntentFlap, false
	case key.Matches(msg, km.keys.Start):
		return core.IntentStart, false
	case key.Matches(msg, km.keys.Pause):
		return core.IntentTogglePause, false
	case key.Matches(msg, km.keys.Resume):
		return core.IntentResume, false
	case key.Matches(msg, km.keys.Leave):
		return core.IntentLeaveToMenu, false
	case key.Matches(msg, km.keys.Restart):
		return core.IntentRestart, false
	}

	return core.IntentNone, false
}
