package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the top-level game mode.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ScoreStore loads and persists the best score. Raise stores score only if
// it beats the stored value and returns the resulting best, so machines
// sharing a store never lower it.
type ScoreStore interface {
	Load() (float64, error)
	Raise(score float64) (float64, error)
}

// World is the mutable gameplay aggregate owned by the Machine.
type World struct {
	Player    Player
	Lane      *Lane
	Score     float64
	HighScore float64
	Params    config.DifficultyParams // Recomputed every physics tick
	Ticks     uint64                  // Physics ticks in the current run
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transitions and swallowed errors.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		m.logger = l
	}
}

// WithTransitionHook registers a callback run after every state change.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(m *Machine) {
		m.onTransition = fn
	}
}

// Machine drives the game. It owns the world, the two timers (physics loop
// and pair spawner) and the intent queue. All methods must be called from a
// single goroutine.
type Machine struct {
	cfg        config.FlappyConfig
	physics    Physics
	difficulty config.Difficulty
	store      ScoreStore
	logger     *log.Logger

	state State
	world World
	queue core.IntentQueue

	loop  *core.IntervalTimer
	spawn *core.IntervalTimer

	tickInterval time.Duration
	onTransition func(from, to State)
}

// NewMachine creates a machine in the Menu state and loads the high score.
// A nil store disables persistence.
func NewMachine(cfg config.FlappyConfig, rt core.RuntimeConfig, store ScoreStore, opts ...Option) *Machine {
	difficulty := config.NewDifficulty(cfg.Difficulty)
	initial := difficulty.Initial()

	m := &Machine{
		cfg:          cfg,
		physics:      NewPhysics(cfg.Physics),
		difficulty:   difficulty,
		store:        store,
		state:        StateMenu,
		tickInterval: rt.TickInterval(),
		world: World{
			Player: newPlayer(cfg.Player),
			Lane:   NewLane(rt.Seed, cfg.Obstacles),
			Params: initial,
		},
	}
	m.loop = core.NewIntervalTimer(m.tickInterval)
	m.spawn = core.NewIntervalTimer(initial.SpawnInterval)

	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}

	m.world.HighScore = m.loadHighScore()
	return m
}

// loadHighScore reads the persisted best; any failure means no prior score.
func (m *Machine) loadHighScore() float64 {
	if m.store == nil {
		return 0
	}
	score, err := m.store.Load()
	if err != nil {
		m.logger.Debug("high score unavailable, starting from zero", "error", err)
		return 0
	}
	return score
}

// State returns the current game mode.
func (m *Machine) State() State {
	return m.state
}

// Score returns the current score.
func (m *Machine) Score() float64 {
	return m.world.Score
}

// HighScore returns the best score seen, persisted or from this process.
func (m *Machine) HighScore() float64 {
	return m.world.HighScore
}

// TickInterval returns the physics tick period.
func (m *Machine) TickInterval() time.Duration {
	return m.tickInterval
}

// Post queues an intent for the next Advance.
func (m *Machine) Post(in core.Intent) {
	m.queue.Push(in)
}

// Advance consumes queued intents, then runs the physics loop for dt of
// elapsed time. The spawner is stepped alongside each physics tick, so a pair
// spawned mid-frame only moves for the ticks after it. Timers only run while
// Playing.
func (m *Machine) Advance(dt time.Duration) {
	for _, in := range m.queue.Drain() {
		m.Apply(in)
	}

	if m.state != StatePlaying {
		return
	}

	for n := m.loop.Advance(dt); n > 0 && m.state == StatePlaying; n-- {
		for k := m.spawn.Advance(m.tickInterval); k > 0; k-- {
			m.world.Lane.SpawnPair(m.world.Params.GapSize)
		}
		m.step()
	}
}

// Tick advances by exactly one physics tick.
func (m *Machine) Tick() {
	m.Advance(m.tickInterval)
}

// Apply handles one intent immediately and reports whether it was valid in
// the current state. Invalid intents are ignored.
func (m *Machine) Apply(in core.Intent) bool {
	switch in {
	case core.IntentStart:
		if m.state == StateMenu {
			m.start()
			return true
		}

	case core.IntentFlap:
		switch m.state {
		case StateMenu, StateGameOver:
			m.start()
			m.physics.Flap(&m.world.Player)
			return true
		case StatePlaying:
			m.physics.Flap(&m.world.Player)
			return true
		}

	case core.IntentTogglePause:
		switch m.state {
		case StatePlaying:
			m.pause()
			return true
		case StatePaused:
			m.resume()
			return true
		}

	case core.IntentResume:
		if m.state == StatePaused {
			m.resume()
			return true
		}

	case core.IntentLeaveToMenu:
		if m.state == StatePaused || m.state == StateGameOver {
			m.leaveToMenu()
			return true
		}

	case core.IntentRestart:
		if m.state == StateGameOver {
			m.start()
			return true
		}
	}

	m.logger.Debug("ignoring intent", "intent", in, "state", m.state)
	return false
}

// resetWorld puts player, obstacles, score and difficulty back to their
// starting values. The high score is kept and caught up with the store.
func (m *Machine) resetWorld() {
	m.world.HighScore = max(m.world.HighScore, m.loadHighScore())
	m.world.Player = newPlayer(m.cfg.Player)
	m.world.Lane.Clear()
	m.world.Score = 0
	m.world.Ticks = 0
	m.world.Params = m.difficulty.Initial()

	m.loop.Reset()
	m.spawn.Reset()
	m.spawn.SetPeriod(m.world.Params.SpawnInterval)
}

func (m *Machine) start() {
	m.resetWorld()
	m.loop.Start()
	m.spawn.Start()
	m.transition(StatePlaying)
}

func (m *Machine) pause() {
	m.loop.Stop()
	m.spawn.Stop()
	m.transition(StatePaused)
}

func (m *Machine) resume() {
	m.loop.Start()
	m.spawn.Start()
	m.transition(StatePlaying)
}

func (m *Machine) leaveToMenu() {
	m.resetWorld()
	m.transition(StateMenu)
}

func (m *Machine) gameOver(reason string) {
	m.loop.Stop()
	m.spawn.Stop()
	m.logger.Debug("run ended", "reason", reason, "score", m.world.Score, "ticks", m.world.Ticks)
	m.transition(StateGameOver)
}

func (m *Machine) transition(to State) {
	from := m.state
	m.state = to
	m.logger.Debug("state change", "from", from, "to", to)
	if m.onTransition != nil {
		m.onTransition(from, to)
	}
}

// step runs one physics tick: integrate the player, derive difficulty, move
// and score obstacles, then check for death.
func (m *Machine) step() {
	w := &m.world
	w.Ticks++

	m.physics.Integrate(&w.Player)

	w.Params = m.difficulty.Params(w.Score)
	if m.spawn.SetPeriod(w.Params.SpawnInterval) {
		m.logger.Debug("spawn interval changed", "interval", w.Params.SpawnInterval, "level", w.Params.Level)
	}

	w.Lane.Advance(w.Params.HorizontalSpeed)
	if passed := w.Lane.MarkPassed(w.Player.X); passed > 0 {
		m.addScore(float64(passed) * m.cfg.Scoring.PassUnit)
	}

	hit := w.Lane.Collides(w.Player.Rect())
	w.Lane.Evict()

	switch {
	case hit:
		m.gameOver("collision")
	case w.Player.Y > m.cfg.Board.Height:
		m.gameOver("fell")
	}
}

// addScore raises the score and writes the high score through as soon as
// it is beaten. The store may hold a higher best from another machine.
func (m *Machine) addScore(delta float64) {
	w := &m.world
	w.Score += delta
	if w.Score <= w.HighScore {
		return
	}
	w.HighScore = w.Score
	if m.store == nil {
		return
	}
	best, err := m.store.Raise(w.Score)
	if err != nil {
		m.logger.Debug("dropping high score write", "score", w.Score, "error", err)
		return
	}
	w.HighScore = max(w.HighScore, best)
}
