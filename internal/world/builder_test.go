package world

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

func testLevel() level.Level {
	return level.Level{
		ID:          "test",
		WorldWidth:  2000,
		PlayerStart: level.Point{X: 100, Y: 300},
		TimeLimit:   60,
		TotalCoins:  3,
		Platforms: []level.Platform{
			{X: 0, Y: 440, Width: 2000, Height: 40, Type: level.TypeGround},
			{X: 300, Y: 340, Width: 150, Height: 20, Type: level.TypePlatform},
			{X: 700, Y: 300, Width: 20, Height: 20, Type: level.TypePlatform},
		},
		Enemies: []level.Enemy{
			{X: 500, Y: 410, Width: 30, Height: 30, Speed: 2, Direction: -1},
			{X: 900, Y: 410, Width: 30, Height: 30, Speed: 1, Direction: 1, MoveRange: 100},
		},
		Castle: level.Rect{X: 1800, Y: 320, Width: 120, Height: 120},
	}
}

func build(t *testing.T, l level.Level, seed int64) *World {
	t.Helper()
	w, err := NewBuilder(config.Default(), rand.New(rand.NewSource(seed))).Build(l)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return w
}

func TestBuildInitialState(t *testing.T) {
	w := build(t, testLevel(), 1)
	cfg := config.Default()

	p := w.Player
	if p.X != 100 || p.Y != 300 {
		t.Errorf("player at (%v,%v), want (100,300)", p.X, p.Y)
	}
	if p.VelX != 0 || p.VelY != 0 || p.Grounded {
		t.Errorf("player should start at rest and airborne, got %+v", p)
	}
	if p.Width != cfg.Player.Width || p.Height != cfg.Player.Height {
		t.Errorf("player size = %vx%v", p.Width, p.Height)
	}
	if !p.FacingRight {
		t.Error("player should face right")
	}
	if w.TotalCoins != 3 || w.CollectedCoins() != 0 {
		t.Errorf("coins = %d/%d, want 0/3", w.CollectedCoins(), w.TotalCoins)
	}
	if w.ActiveEnemies() != 2 {
		t.Errorf("active enemies = %d, want 2", w.ActiveEnemies())
	}
	if w.Castle.Reached {
		t.Error("castle should not start reached")
	}
	if w.CastleOpen() {
		t.Error("castle should be closed with coins outstanding")
	}
}

func TestRandomCoinsStayOnNonGroundPlatforms(t *testing.T) {
	l := testLevel()
	l.CoinCount = 20
	w := build(t, l, 42)

	if len(w.Coins) != 20 {
		t.Fatalf("len(coins) = %d, want max(coinCount, totalCoins) = 20", len(w.Coins))
	}
	for i, c := range w.Coins {
		switch {
		case c.Y == 340-30:
			if c.X < 315 || c.X > 435 {
				t.Errorf("coin %d x=%v outside inset range of platform 1", i, c.X)
			}
		case c.Y == 300-30:
			// Platform 2 is too narrow for the inset; coins go to its center.
			if c.X != 710 {
				t.Errorf("coin %d x=%v, want center 710", i, c.X)
			}
		default:
			t.Errorf("coin %d at y=%v is not above a non-ground platform", i, c.Y)
		}
		if c.Collected {
			t.Errorf("coin %d starts collected", i)
		}
	}
}

func TestRandomCoinsReproducibleWithSeed(t *testing.T) {
	a := build(t, testLevel(), 7)
	b := build(t, testLevel(), 7)
	for i := range a.Coins {
		if a.Coins[i] != b.Coins[i] {
			t.Fatalf("coin %d differs across equal seeds: %+v vs %+v", i, a.Coins[i], b.Coins[i])
		}
	}
}

func TestExplicitCoins(t *testing.T) {
	l := testLevel()
	l.TotalCoins = 0
	l.Coins = []level.Point{{X: 10, Y: 20}, {X: 30, Y: 40}}
	w := build(t, l, 1)

	if len(w.Coins) != 2 {
		t.Fatalf("len(coins) = %d, want 2", len(w.Coins))
	}
	if w.Coins[1].X != 30 || w.Coins[1].Y != 40 {
		t.Errorf("coin 1 = %+v", w.Coins[1])
	}
	if w.TotalCoins != 2 {
		t.Errorf("TotalCoins = %d, want every listed coin", w.TotalCoins)
	}
}

func TestZeroCoinsOpensCastle(t *testing.T) {
	l := testLevel()
	l.TotalCoins = 0
	w := build(t, l, 1)
	if len(w.Coins) != 0 {
		t.Errorf("len(coins) = %d, want 0", len(w.Coins))
	}
	if !w.CastleOpen() {
		t.Error("castle should be open when no coins are required")
	}
}

func TestPatrolBounds(t *testing.T) {
	w := build(t, testLevel(), 1)

	e0 := w.Enemies[0]
	if e0.MinX != 50 || e0.MaxX != 2000-30-50 {
		t.Errorf("default bounds = [%v,%v], want [50,1920]", e0.MinX, e0.MaxX)
	}
	e1 := w.Enemies[1]
	if e1.MinX != 800 || e1.MaxX != 1000 {
		t.Errorf("ranged bounds = [%v,%v], want [800,1000]", e1.MinX, e1.MaxX)
	}
}

func TestBuildConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*level.Level)
		code   string
	}{
		{"zero width", func(l *level.Level) { l.WorldWidth = 0 }, CodeInvalidWorld},
		{"no platforms", func(l *level.Level) { l.Platforms = nil }, CodeNoPlatforms},
		{"flat platform", func(l *level.Level) { l.Platforms[1].Height = 0 }, CodeInvalidPlatform},
		{"castle past edge", func(l *level.Level) { l.Castle.X = 1950 }, CodeCastleOutOfBounds},
		{"no time", func(l *level.Level) { l.TimeLimit = 0 }, CodeInvalidTimeLimit},
		{"start outside", func(l *level.Level) { l.PlayerStart.X = 1990 }, CodeInvalidPlayerStart},
		{"only ground", func(l *level.Level) { l.Platforms = l.Platforms[:1] }, CodeNoCoinPlatforms},
		{"too few listed", func(l *level.Level) {
			l.Coins = []level.Point{{X: 1, Y: 1}}
			l.TotalCoins = 2
		}, CodeCoinsUnsatisfiable},
		{"bad direction", func(l *level.Level) { l.Enemies[0].Direction = 0 }, CodeInvalidEnemy},
		{"negative speed", func(l *level.Level) { l.Enemies[1].Speed = -1 }, CodeInvalidEnemy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLevel()
			l.Platforms = append([]level.Platform(nil), l.Platforms...)
			l.Enemies = append([]level.Enemy(nil), l.Enemies...)
			tt.mutate(&l)

			w, err := NewBuilder(config.Default(), nil).Build(l)
			if w != nil {
				t.Error("Build() returned a world alongside an error")
			}
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("Build() error = %v, want *ConfigurationError", err)
			}
			if cerr.Code != tt.code {
				t.Errorf("code = %s, want %s", cerr.Code, tt.code)
			}
		})
	}
}

func TestOnlyGroundWithoutCoinsIsValid(t *testing.T) {
	l := testLevel()
	l.Platforms = l.Platforms[:1]
	l.TotalCoins = 0
	if _, err := NewBuilder(config.Default(), nil).Build(l); err != nil {
		t.Errorf("Build() error = %v, want nil when no coins are requested", err)
	}
}

func TestBuiltinLevelsBuild(t *testing.T) {
	levels, err := level.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	for _, l := range levels {
		if _, err := NewBuilder(config.Default(), rand.New(rand.NewSource(1))).Build(l); err != nil {
			t.Errorf("level %s: %v", l.ID, err)
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	w := build(t, testLevel(), 1)
	s := w.Snapshot()
	w.Coins[0].Collected = true
	w.Enemies[0].Active = false
	if s.Coins[0].Collected || !s.Enemies[0].Active {
		t.Error("snapshot shares slices with the live world")
	}
}
