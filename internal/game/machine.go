package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/camera"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Machine is the session state machine. It is not safe for concurrent
// use; hosts call it from one loop.
type Machine struct {
	cfg      config.Config
	engine   *physics.Engine
	camera   *camera.Camera
	notifier Notifier
	scores   BestScores
	logger   *log.Logger

	level   level.Level
	world   *world.World
	session Session
	state   State
	outcome Outcome
	best    int
	record  bool

	clock      float64 // seconds accumulated toward the next countdown step
	generation uint64
}

// Option configures a Machine.
type Option func(*Machine)

// WithNotifier sets the HUD receiver.
func WithNotifier(n Notifier) Option {
	return func(m *Machine) { m.notifier = n }
}

// WithBestScores sets the best-score store.
func WithBestScores(s BestScores) Option {
	return func(m *Machine) { m.scores = s }
}

// WithLogger sets the logger for lifecycle transitions.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// New creates a machine in the menu state.
func New(cfg config.Config, opts ...Option) *Machine {
	m := &Machine{
		cfg:    cfg,
		engine: physics.NewEngine(cfg),
		camera: camera.New(cfg.Viewport.Width, cfg.Viewport.CameraSmoothing),
		state:  StateMenu,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	return m
}

// Start builds a fresh world for lvl and begins playing. Any previous
// session is abandoned. On a configuration error the machine returns to
// the menu with no world.
func (m *Machine) Start(lvl level.Level, seed int64) error {
	m.generation++
	m.world = nil

	scaled := lvl.WithTimeScale(m.cfg.Rules.TimeScale)
	w, err := world.NewBuilder(m.cfg, rand.New(rand.NewSource(seed))).Build(scaled)
	if err != nil {
		m.state = StateMenu
		m.outcome = OutcomeNone
		m.logger.Error("level rejected", "level", lvl.ID, "error", err)
		return fmt.Errorf("start %s: %w", lvl.ID, err)
	}

	m.level = lvl
	m.world = w
	m.session = Session{
		Lives:      m.cfg.Rules.Lives,
		TimeLeft:   w.TimeLimit,
		TotalCoins: w.TotalCoins,
	}
	m.outcome = OutcomeNone
	m.record = false
	m.clock = 0
	m.best = m.loadBest(lvl.ID)
	m.camera.Snap(w.Player.X, w.Width)

	m.setState(StatePlaying)
	m.notifyStatus()
	return nil
}

// Restart starts the current level again with a new seed.
func (m *Machine) Restart(seed int64) error {
	if m.level.ID == "" {
		return fmt.Errorf("restart: no level loaded")
	}
	return m.Start(m.level, seed)
}

// Quit abandons the session and returns to the menu.
func (m *Machine) Quit() {
	m.generation++
	m.world = nil
	m.outcome = OutcomeNone
	m.setState(StateMenu)
}

// Pause suspends a playing session. It reports whether the state changed.
func (m *Machine) Pause() bool {
	if m.state != StatePlaying {
		return false
	}
	m.generation++
	m.setState(StatePaused)
	return true
}

// Resume continues a paused session. Time spent paused is not replayed.
func (m *Machine) Resume() bool {
	if m.state != StatePaused {
		return false
	}
	m.generation++
	m.setState(StatePlaying)
	return true
}

// TogglePause pauses or resumes.
func (m *Machine) TogglePause() bool {
	if m.state == StatePaused {
		return m.Resume()
	}
	return m.Pause()
}

// Step runs one physics tick and folds its events. Elapsed time also
// feeds the countdown, one second at a time. Outside the playing state
// Step does nothing.
//
// Every event of the tick is folded into the counters, even after one of
// them ends the session; the end is reported once the tick is complete.
func (m *Machine) Step(in core.Input, dt float64) []physics.Event {
	if m.state != StatePlaying || dt <= 0 {
		return nil
	}

	events := m.engine.Update(m.world, in, dt)
	for _, ev := range events {
		m.apply(ev)
	}
	if m.state != StatePlaying {
		m.finish()
		return events
	}

	m.camera.Update(m.world.Player.X, m.world.Width)
	m.clock += dt
	for m.clock >= 1 && m.state == StatePlaying {
		m.clock--
		m.TimerTick()
	}
	return events
}

// TimerTick counts one second down. The session is lost when time runs
// out. It does nothing unless playing.
func (m *Machine) TimerTick() {
	if m.state != StatePlaying {
		return
	}
	m.session.TimeLeft--
	if m.session.TimeLeft <= 0 {
		m.session.TimeLeft = 0
		m.notifyStatus()
		m.end(OutcomeLose)
		m.finish()
		return
	}
	m.notifyStatus()
}

// apply folds one event. Coins and stomps always count, matching the
// world; lives and the castle apply only while playing.
func (m *Machine) apply(ev physics.Event) {
	rules := m.cfg.Rules
	switch ev.(type) {
	case physics.CoinCollectedEvent:
		m.session.Score += rules.CoinPoints
		m.session.CoinsCollected++
		m.notifyStatus()
		return
	case physics.EnemyStompedEvent:
		m.session.Score += rules.StompPoints
		m.session.EnemiesKilled++
		m.notifyStatus()
		return
	}
	if m.state != StatePlaying {
		return
	}

	switch ev := ev.(type) {
	case physics.PlayerHitEvent:
		if m.loseLife("hit") {
			m.engine.Knockback(m.world, ev)
		}
	case physics.PlayerFellEvent:
		m.loseLife("fell")
	case physics.CastleReachedEvent:
		if m.session.CoinsCollected >= m.session.TotalCoins {
			m.end(OutcomeWin)
		}
	}
}

// loseLife takes a life and reports whether the session goes on.
func (m *Machine) loseLife(cause string) bool {
	m.session.Lives--
	m.logger.Debug("life lost", "cause", cause, "lives", m.session.Lives)
	m.notifyStatus()
	if m.session.Lives <= 0 {
		m.end(OutcomeLose)
		return false
	}
	return true
}

// end stops the session. The result is published by finish.
func (m *Machine) end(o Outcome) {
	m.outcome = o
	m.generation++
	m.setState(StateEnded)
}

// finish persists a new best score and reports the final result.
func (m *Machine) finish() {
	if m.session.Score > m.best {
		m.record = true
		m.best = m.session.Score
		if m.scores != nil {
			if err := m.scores.SetBestScore(m.level.ID, m.session.Score); err != nil {
				m.logger.Warn("could not save best score", "level", m.level.ID, "error", err)
			}
		}
	}

	if m.notifier != nil {
		m.notifier.SessionEnded(m.Result())
	}
}

func (m *Machine) loadBest(levelID string) int {
	if m.scores == nil {
		return 0
	}
	best, err := m.scores.BestScore(levelID)
	if err != nil {
		m.logger.Warn("could not load best score", "level", levelID, "error", err)
		return 0
	}
	return best
}

func (m *Machine) setState(s State) {
	if m.state == s {
		return
	}
	m.logger.Debug("state", "from", m.state, "to", s, "level", m.level.ID, "outcome", m.outcome)
	m.state = s
}

func (m *Machine) notifyStatus() {
	if m.notifier != nil {
		m.notifier.StatusChanged(m.session.status())
	}
}

// State returns the lifecycle state.
func (m *Machine) State() State { return m.state }

// Outcome returns how the session ended, or OutcomeNone.
func (m *Machine) Outcome() Outcome { return m.outcome }

// Session returns a copy of the session counters.
func (m *Machine) Session() Session { return m.session }

// Status returns the HUD view of the session.
func (m *Machine) Status() Status { return m.session.status() }

// Level returns the level being played.
func (m *Machine) Level() level.Level { return m.level }

// BestScore returns the best score known for the current level.
func (m *Machine) BestScore() int { return m.best }

// CameraX returns the horizontal scroll offset in world pixels.
func (m *Machine) CameraX() float64 { return m.camera.X }

// Generation identifies the current scheduling epoch. It changes whenever
// pending ticks must be discarded: start, quit, pause, resume and end.
func (m *Machine) Generation() uint64 { return m.generation }

// World returns the live world, or nil in the menu. Callers must treat it
// as read-only; use Snapshot for a copy.
func (m *Machine) World() *world.World { return m.world }

// Snapshot returns a copy of the world for rendering.
func (m *Machine) Snapshot() (world.World, bool) {
	if m.world == nil {
		return world.World{}, false
	}
	return m.world.Snapshot(), true
}

// Result describes the session as it stands.
func (m *Machine) Result() Result {
	return Result{
		LevelID:        m.level.ID,
		Won:            m.outcome == OutcomeWin,
		Score:          m.session.Score,
		CoinsCollected: m.session.CoinsCollected,
		EnemiesKilled:  m.session.EnemiesKilled,
		TimeLeft:       m.session.TimeLeft,
		BestScore:      m.best,
		NewRecord:      m.record,
	}
}
