package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

type mode int

const (
	modeMenu mode = iota
	modeGame
	modeScores
)

// Options configures a Model.
type Options struct {
	Levels  []level.Level
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // optional
	Player  string         // recorded with each run
	Logger  *log.Logger

	// StartLevel, when set, skips the menu and starts that level.
	StartLevel string

	// ScreenshotDir is where ctrl+s writes the screen; empty uses
	// ~/.platformer/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one player: level menu, game and
// scoreboard.
type Model struct {
	levels  []level.Level
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	shotDir string

	machine  *game.Machine
	hud      *hud
	held     *core.HeldInput
	keys     *KeyMapper
	renderer *Renderer
	screen   *core.Screen

	mode       mode
	cursor     int
	best       map[string]int
	scoreboard ScoreboardModel
	lastTick   time.Time
	err        error
	quitting   bool
}

// NewModel creates a model. A StartLevel that fails to start leaves the
// model in the menu with the error shown.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	h := &hud{store: opts.Store, player: opts.Player, logger: logger}
	machineOpts := []game.Option{game.WithNotifier(h), game.WithLogger(logger)}
	if opts.Store != nil {
		machineOpts = append(machineOpts, game.WithBestScores(opts.Store))
	}

	m := Model{
		levels:   opts.Levels,
		runtime:  rt,
		store:    opts.Store,
		logger:   logger,
		shotDir:  opts.ScreenshotDir,
		machine:  game.New(opts.Config, machineOpts...),
		hud:      h,
		held:     core.NewHeldInput(opts.Config.Controls.HoldTicks),
		keys:     NewKeyMapper(),
		renderer: NewRenderer(opts.Config.Viewport),
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
	}
	m.loadBest()

	if opts.StartLevel != "" {
		for i, l := range m.levels {
			if l.ID == opts.StartLevel {
				m.cursor = i
				m.startSelected()
				break
			}
		}
		if m.mode != modeGame && m.err == nil {
			m.err = fmt.Errorf("unknown level %q", opts.StartLevel)
		}
	}
	return m
}

// Init starts the tick loop when a level is already running.
func (m Model) Init() tea.Cmd {
	if m.machine.State() == game.StatePlaying {
		return tickCmd(m.runtime.TickRate, m.machine.Generation())
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.mode == modeScores {
			return m.updateScores(msg)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		switch m.mode {
		case modeGame:
			return m.handleGameKey(msg)
		case modeScores:
			return m.updateScores(msg)
		default:
			return m.handleMenuKey(msg)
		}
	}
	return m, nil
}

// handleTick advances the session. Ticks from an older epoch end their
// chain here.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.machine.Generation() || m.machine.State() != game.StatePlaying {
		return m, nil
	}

	dt := msg.Time.Sub(m.lastTick).Seconds()
	m.lastTick = msg.Time
	m.machine.Step(m.held.Sample(), dt)

	if m.machine.State() != game.StatePlaying {
		m.held.Release()
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate, m.machine.Generation())
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	state := m.machine.State()

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight, core.ActionJump:
		if state == game.StatePlaying {
			m.held.Press(action)
		}

	case core.ActionPause:
		if !m.machine.TogglePause() {
			return m, nil
		}
		m.held.Release()
		if m.machine.State() == game.StatePlaying {
			m.lastTick = time.Now()
			return m, tickCmd(m.runtime.TickRate, m.machine.Generation())
		}

	case core.ActionConfirm:
		if state == game.StateEnded {
			return m, m.restart()
		}

	case core.ActionBack:
		if state != game.StatePlaying {
			m.machine.Quit()
			m.held.Release()
			m.mode = modeMenu
			m.loadBest()
		}
	}
	return m, nil
}

// startSelected starts the level under the cursor and returns the first
// tick, or nil when the level was rejected.
func (m *Model) startSelected() tea.Cmd {
	if len(m.levels) == 0 {
		return nil
	}
	lvl := m.levels[m.cursor]
	m.hud.reset()
	if err := m.machine.Start(lvl, m.seed()); err != nil {
		m.err = err
		m.mode = modeMenu
		return nil
	}
	m.err = nil
	m.mode = modeGame
	m.held.Release()
	m.lastTick = time.Now()
	return tickCmd(m.runtime.TickRate, m.machine.Generation())
}

func (m *Model) restart() tea.Cmd {
	m.hud.reset()
	if err := m.machine.Restart(m.seed()); err != nil {
		m.err = err
		m.mode = modeMenu
		return nil
	}
	m.held.Release()
	m.lastTick = time.Now()
	return tickCmd(m.runtime.TickRate, m.machine.Generation())
}

func (m *Model) seed() int64 {
	if m.runtime.Seed != 0 {
		return m.runtime.Seed
	}
	return time.Now().UnixNano()
}

// loadBest refreshes the per-level best scores shown in the menu.
func (m *Model) loadBest() {
	m.best = make(map[string]int, len(m.levels))
	if m.store == nil {
		return
	}
	for _, l := range m.levels {
		best, err := m.store.BestScore(l.ID)
		if err != nil {
			m.logger.Warn("could not load best score", "level", l.ID, "error", err)
			continue
		}
		m.best[l.ID] = best
	}
}

// frame collects a render snapshot from the machine.
func (m Model) frame() (Frame, bool) {
	w, ok := m.machine.Snapshot()
	if !ok {
		return Frame{}, false
	}
	f := Frame{
		World:     w,
		CameraX:   m.machine.CameraX(),
		Status:    m.machine.Status(),
		State:     m.machine.State(),
		Outcome:   m.machine.Outcome(),
		BestScore: m.machine.BestScore(),
		Title:     w.LevelName,
	}
	if r := m.hud.result; r != nil {
		f.NewRecord = r.NewRecord
	}
	return f, true
}

// saveScreenshot writes the current game screen as plain text.
func (m *Model) saveScreenshot() {
	f, ok := m.frame()
	if !ok {
		return
	}
	m.renderer.Draw(m.screen, f)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, ".platformer", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", f.World.LevelID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeScores:
		return m.scoreboard.View()
	case modeGame:
		if f, ok := m.frame(); ok {
			m.renderer.Draw(m.screen, f)
			return RenderScreen(m.screen)
		}
	}
	return m.viewMenu()
}

// Machine exposes the session state machine.
func (m Model) Machine() *game.Machine {
	return m.machine
}

// Err returns the last level start error, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts a Bubble Tea program for opts on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
