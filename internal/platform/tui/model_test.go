package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	machine := game.NewMachine(config.Default(), rt, nil)
	return NewModel(machine, store, rt, "tester"), store
}

// step sends msg and returns the updated model.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

// tick advances the model by one physics tick of wall time.
func tick(t *testing.T, m Model) Model {
	t.Helper()
	return step(t, m, TickMsg(m.lastTick.Add(m.machine.TickInterval())))
}

func TestKeysBecomeIntentsOnTick(t *testing.T) {
	m, _ := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.machine.State() != game.StateMenu {
		t.Fatal("intent applied before the tick")
	}

	m = tick(t, m)
	if m.machine.State() != game.StatePlaying {
		t.Fatalf("state = %v, want Playing", m.machine.State())
	}

	m = step(t, m, runeKey('f'))
	if m.machine.State() != game.StatePlaying {
		t.Errorf("unbound key changed state to %v", m.machine.State())
	}
}

func TestPauseAppliesImmediately(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	before := m.machine.Snapshot().Tick

	m = step(t, m, runeKey('p'))
	if m.machine.State() != game.StatePaused {
		t.Fatalf("state = %v, want Paused without a tick", m.machine.State())
	}

	// Ticks while paused do not move the world
	m = tick(t, m)
	if got := m.machine.Snapshot().Tick; got != before {
		t.Errorf("ticks = %d while paused, want %d", got, before)
	}

	m = step(t, m, runeKey('c'))
	if m.machine.State() != game.StatePlaying {
		t.Errorf("state = %v, want Playing after continue", m.machine.State())
	}

	m = step(t, m, runeKey('p'))
	m = step(t, m, runeKey('p'))
	if m.machine.State() != game.StatePlaying {
		t.Errorf("state = %v, want Playing after double toggle", m.machine.State())
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce QuitMsg")
	}
	if next.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestGameOverRecordsRun(t *testing.T) {
	m, store := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 200 && m.machine.State() != game.StateGameOver; i++ {
		m = tick(t, m)
	}
	if m.machine.State() != game.StateGameOver {
		t.Fatal("run never ended")
	}

	// Further ticks in GameOver must not record again
	m = tick(t, m)
	_ = tick(t, m)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	if runs[0].Player != "tester" || runs[0].Ticks == 0 {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestScoreboardFromMenu(t *testing.T) {
	m, _ := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("scoreboard not opened")
	}
	if !strings.Contains(m.View(), "TOP RUNS") {
		t.Error("scoreboard view missing title")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("scoreboard still open after back")
	}
	if m.machine.State() != game.StateMenu {
		t.Errorf("state = %v, want Menu", m.machine.State())
	}
}

func TestScoreboardOnlyFromMenu(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard != nil {
		t.Error("scoreboard opened during play")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	before := m.machine.Snapshot()

	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
	if after := m.machine.Snapshot(); after.Tick != before.Tick || after.State != game.StatePlaying {
		t.Errorf("run changed on resize: %+v", after)
	}
}

func TestStalledFrameIsCapped(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	start := m.machine.Snapshot().Tick

	m = step(t, m, TickMsg(m.lastTick.Add(10*time.Second)))
	ticks := m.machine.Snapshot().Tick - start
	maxTicks := uint64(maxFrameStep/m.machine.TickInterval()) + 1
	if ticks > maxTicks {
		t.Errorf("ran %d ticks after a stall, want at most %d", ticks, maxTicks)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawText(0, 0, "ab", core.ColorGreen)
	scr.DrawText(2, 0, "cd", core.ColorRed)
	scr.DrawText(0, 1, "xyz", core.ColorDefault)

	out := RenderScreen(scr)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
