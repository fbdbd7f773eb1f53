package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

const frame = 1.0 / 60.0

type recorder struct {
	statuses []Status
	results  []Result
}

func (r *recorder) StatusChanged(s Status) { r.statuses = append(r.statuses, s) }
func (r *recorder) SessionEnded(res Result) { r.results = append(r.results, res) }

type memScores struct {
	best map[string]int
	sets int
}

func (s *memScores) BestScore(id string) (int, error) { return s.best[id], nil }

func (s *memScores) SetBestScore(id string, score int) error {
	s.sets++
	s.best[id] = score
	return nil
}

// flatLevel puts the player on solid ground at x=100 with nothing else
// around. The castle sits far to the right.
func flatLevel() level.Level {
	return level.Level{
		ID:          "flat",
		WorldWidth:  2000,
		PlayerStart: level.Point{X: 100, Y: 400},
		TimeLimit:   60,
		Platforms: []level.Platform{
			{X: 0, Y: 440, Width: 2000, Height: 40, Type: level.TypeGround},
		},
		Castle: level.Rect{X: 1800, Y: 320, Width: 120, Height: 120},
	}
}

func start(t *testing.T, m *Machine, l level.Level) {
	t.Helper()
	if err := m.Start(l, 1); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if m.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", m.State())
	}
}

func TestNewMachineInMenu(t *testing.T) {
	m := New(config.Default())
	if m.State() != StateMenu || m.World() != nil {
		t.Errorf("state = %v world = %v, want menu without world", m.State(), m.World())
	}
	if events := m.Step(core.Input{}, frame); events != nil {
		t.Errorf("Step() in menu = %v, want nil", events)
	}
}

func TestStartInitialSession(t *testing.T) {
	cfg := config.Default()
	rec := &recorder{}
	m := New(cfg, WithNotifier(rec))
	l := flatLevel()
	l.TotalCoins = 2
	l.Coins = []level.Point{{X: 500, Y: 400}, {X: 600, Y: 400}}
	start(t, m, l)

	s := m.Session()
	want := Session{Lives: 3, TimeLeft: 60, TotalCoins: 2}
	if s != want {
		t.Errorf("session = %+v, want %+v", s, want)
	}
	if len(rec.statuses) != 1 || rec.statuses[0].Lives != 3 {
		t.Errorf("statuses = %+v, want one initial status", rec.statuses)
	}
}

func TestTimeScale(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.TimeScale = 1.5
	m := New(cfg)
	start(t, m, flatLevel())
	if m.Session().TimeLeft != 90 {
		t.Errorf("TimeLeft = %d, want 90", m.Session().TimeLeft)
	}
}

func TestCoinScores(t *testing.T) {
	m := New(config.Default())
	l := flatLevel()
	l.TotalCoins = 2
	l.Coins = []level.Point{{X: 130, Y: 420}, {X: 900, Y: 420}}
	start(t, m, l)

	m.Step(core.Input{}, frame)

	s := m.Session()
	if s.Score != 100 || s.CoinsCollected != 1 {
		t.Errorf("score=%d coins=%d, want 100/1", s.Score, s.CoinsCollected)
	}
	if !m.World().Coins[0].Collected {
		t.Error("coin not marked collected")
	}
}

func TestStompScores(t *testing.T) {
	m := New(config.Default())
	l := flatLevel()
	l.PlayerStart = level.Point{X: 100, Y: 380}
	l.Enemies = []level.Enemy{{X: 100, Y: 415, Width: 30, Height: 30, Speed: 0, Direction: 1}}
	start(t, m, l)

	events := m.Step(core.Input{}, frame)

	if len(events) != 1 {
		t.Fatalf("events = %v, want one stomp", events)
	}
	if _, ok := events[0].(physics.EnemyStompedEvent); !ok {
		t.Fatalf("event = %T, want EnemyStompedEvent", events[0])
	}
	s := m.Session()
	if s.Score != 200 || s.EnemiesKilled != 1 || s.Lives != 3 {
		t.Errorf("session = %+v, want score 200, 1 kill, 3 lives", s)
	}
	if m.World().Player.VelY != -8 {
		t.Errorf("velY = %v, want -8", m.World().Player.VelY)
	}
}

func TestHitLosesLifeWithKnockback(t *testing.T) {
	m := New(config.Default())
	l := flatLevel()
	l.Enemies = []level.Enemy{{X: 120, Y: 410, Width: 30, Height: 30, Speed: 0, Direction: 1}}
	start(t, m, l)

	m.Step(core.Input{}, frame)

	if m.Session().Lives != 2 || m.State() != StatePlaying {
		t.Fatalf("lives=%d state=%v, want 2/playing", m.Session().Lives, m.State())
	}
	p := m.World().Player
	if p.X != 60 || p.VelY != -6 {
		t.Errorf("player x=%v velY=%v, want knocked back to 60 with bounce", p.X, p.VelY)
	}

	for i := 0; i < 10; i++ {
		m.Step(core.Input{}, frame)
	}
	if m.Session().Lives != 2 {
		t.Errorf("lives = %d, invulnerability should prevent repeat hits", m.Session().Lives)
	}
}

func TestLastLifeEndsSession(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.Lives = 1
	rec := &recorder{}
	m := New(cfg, WithNotifier(rec))
	l := flatLevel()
	l.Enemies = []level.Enemy{{X: 120, Y: 410, Width: 30, Height: 30, Speed: 0, Direction: 1}}
	start(t, m, l)

	m.Step(core.Input{}, frame)

	if m.Session().Lives != 0 {
		t.Errorf("lives = %d, want 0", m.Session().Lives)
	}
	if m.State() != StateEnded || m.Outcome() != OutcomeLose {
		t.Errorf("state=%v outcome=%v, want ended/lose", m.State(), m.Outcome())
	}
	if m.World().Player.X != 100 {
		t.Errorf("fatal hit applied knockback, x = %v", m.World().Player.X)
	}
	if len(rec.results) != 1 || rec.results[0].Won {
		t.Errorf("results = %+v, want one loss", rec.results)
	}
}

func inactiveEnemies(m *Machine) int {
	n := 0
	for _, en := range m.World().Enemies {
		if !en.Active {
			n++
		}
	}
	return n
}

func TestFatalTickStillCountsEvents(t *testing.T) {
	tests := []struct {
		name      string
		level     func() level.Level
		setup     func(m *Machine)
		wantScore int
		wantCoins int
		wantKills int
	}{
		{
			name: "fall then coin at respawn",
			level: func() level.Level {
				l := flatLevel()
				l.TotalCoins = 1
				// Respawn puts the player's center on this coin.
				l.Coins = []level.Point{{X: 115, Y: 420}}
				return l
			},
			setup: func(m *Machine) {
				m.World().Player.Y = 700
			},
			wantScore: 100,
			wantCoins: 1,
		},
		{
			name: "hit then stomp",
			level: func() level.Level {
				l := flatLevel()
				l.PlayerStart = level.Point{X: 100, Y: 380}
				l.Enemies = []level.Enemy{
					{X: 75, Y: 400, Width: 30, Height: 30, Direction: 1},
					{X: 120, Y: 425, Width: 30, Height: 30, Direction: 1},
				}
				return l
			},
			setup: func(m *Machine) {
				m.World().Player.VelY = 5
			},
			wantScore: 200,
			wantKills: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Rules.Lives = 1
			rec := &recorder{}
			m := New(cfg, WithNotifier(rec))
			start(t, m, tt.level())
			tt.setup(m)

			m.Step(core.Input{}, frame)

			if m.State() != StateEnded || m.Outcome() != OutcomeLose {
				t.Fatalf("state=%v outcome=%v, want ended/lose", m.State(), m.Outcome())
			}
			s := m.Session()
			if s.CoinsCollected != m.World().CollectedCoins() {
				t.Errorf("coins = %d, world has %d collected", s.CoinsCollected, m.World().CollectedCoins())
			}
			if s.EnemiesKilled != inactiveEnemies(m) {
				t.Errorf("kills = %d, world has %d inactive", s.EnemiesKilled, inactiveEnemies(m))
			}
			if s.Score != tt.wantScore || s.CoinsCollected != tt.wantCoins || s.EnemiesKilled != tt.wantKills {
				t.Errorf("session = %+v, want score %d coins %d kills %d", s, tt.wantScore, tt.wantCoins, tt.wantKills)
			}
			if len(rec.results) != 1 {
				t.Fatalf("results = %+v, want one", rec.results)
			}
			res := rec.results[0]
			if res.Score != s.Score || res.CoinsCollected != s.CoinsCollected || res.EnemiesKilled != s.EnemiesKilled {
				t.Errorf("result = %+v, want the folded session %+v", res, s)
			}
		})
	}
}

func TestFallLosesLife(t *testing.T) {
	m := New(config.Default())
	l := flatLevel()
	l.Platforms = []level.Platform{{X: 500, Y: 440, Width: 1500, Height: 40, Type: level.TypeGround}}
	l.PlayerStart = level.Point{X: 100, Y: 300}
	start(t, m, l)

	fell := false
	for i := 0; i < 300 && !fell; i++ {
		for _, ev := range m.Step(core.Input{}, 0.05) {
			if _, ok := ev.(physics.PlayerFellEvent); ok {
				fell = true
			}
		}
	}
	if !fell {
		t.Fatal("player never fell out")
	}
	if m.Session().Lives != 2 || m.State() != StatePlaying {
		t.Errorf("lives=%d state=%v, want 2/playing", m.Session().Lives, m.State())
	}
	if p := m.World().Player; p.X != 100 || p.Y != 300 {
		t.Errorf("player at (%v,%v), want respawned at start", p.X, p.Y)
	}
}

func TestCastleWinIsFinal(t *testing.T) {
	rec := &recorder{}
	m := New(config.Default(), WithNotifier(rec))
	l := flatLevel()
	l.TimeLimit = 1
	l.Castle = level.Rect{X: 60, Y: 320, Width: 120, Height: 120}
	start(t, m, l)

	m.Step(core.Input{}, frame)

	if !m.World().Castle.Reached {
		t.Fatal("castle not reached")
	}
	if m.State() != StateEnded || m.Outcome() != OutcomeWin {
		t.Fatalf("state=%v outcome=%v, want ended/win", m.State(), m.Outcome())
	}

	m.Step(core.Input{}, 5)
	m.TimerTick()
	if m.Outcome() != OutcomeWin || m.Session().TimeLeft != 1 {
		t.Errorf("outcome=%v timeLeft=%d, win must not be revoked", m.Outcome(), m.Session().TimeLeft)
	}
	if len(rec.results) != 1 || !rec.results[0].Won {
		t.Errorf("results = %+v, want exactly one win", rec.results)
	}
}

func TestCastleLockedUntilCoinsCollected(t *testing.T) {
	m := New(config.Default())
	l := flatLevel()
	l.Castle = level.Rect{X: 60, Y: 320, Width: 120, Height: 120}
	l.TotalCoins = 1
	l.Coins = []level.Point{{X: 1000, Y: 400}}
	start(t, m, l)

	m.Step(core.Input{}, frame)

	if m.State() != StatePlaying || m.World().Castle.Reached {
		t.Errorf("state=%v reached=%v, castle should stay locked", m.State(), m.World().Castle.Reached)
	}
}

func TestTimerRunsOut(t *testing.T) {
	rec := &recorder{}
	m := New(config.Default(), WithNotifier(rec))
	l := flatLevel()
	l.TimeLimit = 3
	start(t, m, l)

	for i := 0; i < 5; i++ {
		m.Step(core.Input{}, 0.5)
	}
	if m.State() != StatePlaying || m.Session().TimeLeft != 1 {
		t.Fatalf("after 2.5s state=%v timeLeft=%d, want playing/1", m.State(), m.Session().TimeLeft)
	}

	m.Step(core.Input{}, 0.5)
	if m.State() != StateEnded || m.Outcome() != OutcomeLose {
		t.Errorf("state=%v outcome=%v, want ended/lose", m.State(), m.Outcome())
	}
	if m.Session().TimeLeft != 0 {
		t.Errorf("TimeLeft = %d, want 0", m.Session().TimeLeft)
	}
	last := rec.statuses[len(rec.statuses)-1]
	if last.TimeLeft != 0 {
		t.Errorf("last HUD time = %d, want 0", last.TimeLeft)
	}
}

func TestPauseFreezesSession(t *testing.T) {
	m := New(config.Default())
	l := flatLevel()
	l.TimeLimit = 2
	start(t, m, l)

	gen := m.Generation()
	if !m.Pause() {
		t.Fatal("Pause() = false")
	}
	if m.Generation() == gen {
		t.Error("pause must start a new generation")
	}
	if m.Pause() {
		t.Error("second Pause() should be a no-op")
	}

	x := m.World().Player.X
	m.Step(core.Input{MoveRight: true}, 5)
	m.TimerTick()
	if m.World().Player.X != x || m.Session().TimeLeft != 2 {
		t.Errorf("paused session advanced: x=%v timeLeft=%d", m.World().Player.X, m.Session().TimeLeft)
	}

	if !m.TogglePause() || m.State() != StatePlaying {
		t.Fatalf("TogglePause() did not resume, state=%v", m.State())
	}
	m.Step(core.Input{MoveRight: true}, frame)
	if m.World().Player.X != x+5 {
		t.Errorf("x = %v, want %v after resume", m.World().Player.X, x+5)
	}
}

func TestZeroDeltaStep(t *testing.T) {
	m := New(config.Default())
	start(t, m, flatLevel())
	before := m.World().Snapshot()

	m.Step(core.Input{MoveRight: true, Jump: true}, 0)

	if m.World().Player != before.Player || m.Session().TimeLeft != 60 {
		t.Error("zero-dt step changed the session")
	}
}

func TestStartRejectsBadLevel(t *testing.T) {
	m := New(config.Default())
	l := flatLevel()
	l.Castle.X = 1950

	err := m.Start(l, 1)

	var cerr *world.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("Start() error = %v, want *world.ConfigurationError", err)
	}
	if cerr.Code != world.CodeCastleOutOfBounds {
		t.Errorf("code = %s", cerr.Code)
	}
	if m.State() != StateMenu || m.World() != nil {
		t.Errorf("state=%v world=%v, want menu without world", m.State(), m.World())
	}
}

func TestRestartAndQuit(t *testing.T) {
	m := New(config.Default())
	if err := m.Restart(1); err == nil {
		t.Error("Restart() without a level should fail")
	}

	l := flatLevel()
	l.TotalCoins = 1
	l.Coins = []level.Point{{X: 130, Y: 420}}
	start(t, m, l)
	m.Step(core.Input{}, frame)
	gen := m.Generation()

	if err := m.Restart(2); err != nil {
		t.Fatalf("Restart() error = %v", err)
	}
	if m.Session().Score != 0 || m.World().CollectedCoins() != 0 {
		t.Errorf("restart kept progress: %+v", m.Session())
	}
	if m.Generation() == gen {
		t.Error("restart must start a new generation")
	}

	m.Quit()
	if m.State() != StateMenu || m.World() != nil {
		t.Errorf("state=%v, want menu without world", m.State())
	}
	if _, ok := m.Snapshot(); ok {
		t.Error("Snapshot() in menu should report no world")
	}
}

func TestBestScorePersistence(t *testing.T) {
	tests := []struct {
		name     string
		best     int
		wantSets int
		record   bool
	}{
		{"beats record", 50, 1, true},
		{"ties record", 100, 0, false},
		{"below record", 500, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memScores{best: map[string]int{"flat": tt.best}}
			rec := &recorder{}
			m := New(config.Default(), WithBestScores(store), WithNotifier(rec))
			l := flatLevel()
			l.TotalCoins = 1
			l.Coins = []level.Point{{X: 130, Y: 420}}
			l.Castle = level.Rect{X: 60, Y: 320, Width: 120, Height: 120}
			start(t, m, l)

			m.Step(core.Input{}, frame)

			if m.Outcome() != OutcomeWin {
				t.Fatalf("outcome = %v, want win", m.Outcome())
			}
			if store.sets != tt.wantSets {
				t.Errorf("SetBestScore calls = %d, want %d", store.sets, tt.wantSets)
			}
			res := rec.results[0]
			if res.NewRecord != tt.record || res.Score != 100 {
				t.Errorf("result = %+v", res)
			}
		})
	}
}
