package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Model is the Bubble Tea model for one player's game.
type Model struct {
	machine    *game.Machine
	screen     *core.Screen
	store      *storage.Store // Run history, optional
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	player     string
	lastTick   time.Time
	scoreboard *ScoreboardModel // Non-nil while the scoreboard is open
	quitting   bool
}

// NewModel creates a new Bubble Tea model driving the given machine.
func NewModel(machine *game.Machine, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	return Model{
		machine:   machine,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		player:    player,
		lastTick:  time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.machine.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Scores) && m.machine.State() == game.StateMenu:
		sb := NewScoreboardModel(m.store, m.screen.Width(), m.screen.Height())
		m.scoreboard = &sb
		return m, nil
	}

	intent, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch intent {
	case core.IntentTogglePause, core.IntentResume:
		// Pausing must not wait for the next tick
		m.machine.Apply(intent)
	default:
		m.machine.Post(intent)
	}

	return m, nil
}

// updateScoreboard forwards a message to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events. The board is scaled, so the
// run is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick feeds elapsed time to the machine and records finished runs.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameStep(m.lastTick, now)
	m.lastTick = now

	before := m.machine.State()
	m.machine.Advance(dt)
	if before != game.StateGameOver && m.machine.State() == game.StateGameOver {
		m.saveRun()
	}

	return m, tickCmd(m.machine.TickInterval())
}

// saveRun records the finished run in the history store.
func (m Model) saveRun() {
	if m.store == nil {
		return
	}

	snap := m.machine.Snapshot()
	run := storage.Run{
		Player: m.player,
		Score:  snap.Score,
		Best:   snap.HighScore,
		Ticks:  int(snap.Tick),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		log.Warn("could not save run", "player", m.player, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	game.Render(m.machine.Snapshot(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	game.Render(m.machine.Snapshot(), m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given machine.
func Run(machine *game.Machine, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewModel(machine, store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
