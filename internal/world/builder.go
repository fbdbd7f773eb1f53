package world

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Coin placement constants (world pixels).
const (
	CoinRadius    = 10
	coinEdgeInset = 15 // keep coins this far from platform edges
	coinLift      = 30 // coin center sits this far above the platform top
	patrolMargin  = 50 // default patrol bound inset from the world edges
)

// Builder instantiates worlds from level data.
// The RNG is only consulted for random coin placement.
type Builder struct {
	cfg config.Config
	rng *rand.Rand
}

// NewBuilder creates a builder. Pass a seeded RNG for reproducible worlds.
func NewBuilder(cfg config.Config, rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Builder{cfg: cfg, rng: rng}
}

// Build validates the level and returns a fresh world, or a
// *ConfigurationError. Nothing is allocated for an invalid level.
func (b *Builder) Build(l level.Level) (*World, error) {
	if err := b.validate(l); err != nil {
		return nil, err
	}

	w := &World{
		LevelID:    l.ID,
		LevelName:  l.Title(),
		Width:      l.WorldWidth,
		StartX:     l.PlayerStart.X,
		StartY:     l.PlayerStart.Y,
		TimeLimit:  l.TimeLimit,
		TotalCoins: l.RequiredCoins(),
		Player: Player{
			X:           l.PlayerStart.X,
			Y:           l.PlayerStart.Y,
			Width:       b.cfg.Player.Width,
			Height:      b.cfg.Player.Height,
			Speed:       b.cfg.Physics.Speed,
			JumpPower:   b.cfg.Physics.JumpPower,
			Gravity:     b.cfg.Physics.Gravity,
			FacingRight: true,
		},
		Castle: Castle{
			Box: core.NewBox(l.Castle.X, l.Castle.Y, l.Castle.Width, l.Castle.Height),
		},
	}

	w.Platforms = make([]Platform, len(l.Platforms))
	for i, p := range l.Platforms {
		w.Platforms[i] = Platform{
			Box:  core.NewBox(p.X, p.Y, p.Width, p.Height),
			Kind: p.Type,
		}
	}

	if l.HasExplicitCoins() {
		w.Coins = make([]Coin, len(l.Coins))
		for i, c := range l.Coins {
			w.Coins[i] = newCoin(c.X, c.Y, i)
		}
	} else {
		w.Coins = b.placeCoins(l)
	}

	w.Enemies = make([]Enemy, len(l.Enemies))
	for i, e := range l.Enemies {
		minX, maxX := patrolBounds(e, l.WorldWidth)
		w.Enemies[i] = Enemy{
			X:         e.X,
			Y:         e.Y,
			Width:     e.Width,
			Height:    e.Height,
			Speed:     e.Speed,
			Direction: e.Direction,
			Active:    true,
			MinX:      minX,
			MaxX:      maxX,
		}
	}

	return w, nil
}

// placeCoins picks a non-ground platform uniformly per coin, revisiting
// platforms as needed, and drops the coin at a uniform x above it.
func (b *Builder) placeCoins(l level.Level) []Coin {
	n := l.RandomCoinCount()
	if n == 0 {
		return nil
	}

	candidates := coinPlatforms(l)
	coins := make([]Coin, n)
	for i := range coins {
		p := candidates[b.rng.Intn(len(candidates))]
		lo := p.X + coinEdgeInset
		hi := p.X + p.Width - coinEdgeInset
		x := p.X + p.Width/2
		if hi > lo {
			x = lo + b.rng.Float64()*(hi-lo)
		}
		coins[i] = newCoin(x, p.Y-coinLift, i)
	}
	return coins
}

func newCoin(x, y float64, i int) Coin {
	return Coin{X: x, Y: y, Radius: CoinRadius, Phase: float64(i) * 0.7}
}

func coinPlatforms(l level.Level) []level.Platform {
	var out []level.Platform
	for _, p := range l.Platforms {
		if !p.IsGround() {
			out = append(out, p)
		}
	}
	return out
}

// patrolBounds returns the x-range an enemy patrols. Without a move range
// it is the whole world minus a margin; with one it is the span around the
// spawn point, kept inside that default.
func patrolBounds(e level.Enemy, worldWidth float64) (float64, float64) {
	minX := float64(patrolMargin)
	maxX := worldWidth - e.Width - patrolMargin
	if e.MoveRange > 0 {
		minX = core.ClampF(e.X-e.MoveRange, minX, maxX)
		maxX = core.ClampF(e.X+e.MoveRange, minX, maxX)
	}
	if maxX < minX {
		x := core.ClampF(e.X, 0, worldWidth-e.Width)
		return x, x
	}
	return minX, maxX
}

func (b *Builder) validate(l level.Level) error {
	if l.WorldWidth <= 0 {
		return configErr(CodeInvalidWorld, "world width must be positive, got %v", l.WorldWidth)
	}
	if l.WorldWidth < b.cfg.Player.Width {
		return configErr(CodeInvalidWorld, "world width %v is narrower than the player", l.WorldWidth)
	}
	if l.TimeLimit <= 0 {
		return configErr(CodeInvalidTimeLimit, "time limit must be positive, got %d", l.TimeLimit)
	}
	if len(l.Platforms) == 0 {
		return configErr(CodeNoPlatforms, "level has no platforms")
	}
	for i, p := range l.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return configErr(CodeInvalidPlatform, "platform %d has non-positive size %vx%v", i, p.Width, p.Height)
		}
	}

	c := l.Castle
	if c.Width <= 0 || c.Height <= 0 {
		return configErr(CodeCastleOutOfBounds, "castle has non-positive size %vx%v", c.Width, c.Height)
	}
	if c.X < 0 || c.Right() > l.WorldWidth {
		return configErr(CodeCastleOutOfBounds, "castle spans [%v, %v], world width is %v", c.X, c.Right(), l.WorldWidth)
	}

	start := l.PlayerStart
	if start.X < 0 || start.X > l.WorldWidth-b.cfg.Player.Width {
		return configErr(CodeInvalidPlayerStart, "player start x=%v outside [0, %v]", start.X, l.WorldWidth-b.cfg.Player.Width)
	}

	if l.TotalCoins < 0 || l.CoinCount < 0 {
		return configErr(CodeCoinsUnsatisfiable, "coin counts must not be negative")
	}
	if l.HasExplicitCoins() {
		if l.RequiredCoins() > len(l.Coins) {
			return configErr(CodeCoinsUnsatisfiable, "level requires %d coins but lists only %d", l.RequiredCoins(), len(l.Coins))
		}
	} else if l.RandomCoinCount() > 0 && len(coinPlatforms(l)) == 0 {
		return configErr(CodeNoCoinPlatforms, "level requests %d random coins but has no non-ground platforms", l.RandomCoinCount())
	}

	for i, e := range l.Enemies {
		if e.Width <= 0 || e.Height <= 0 {
			return configErr(CodeInvalidEnemy, "enemy %d has non-positive size %vx%v", i, e.Width, e.Height)
		}
		if e.Speed < 0 {
			return configErr(CodeInvalidEnemy, "enemy %d has negative speed %v", i, e.Speed)
		}
		if e.Direction != -1 && e.Direction != 1 {
			return configErr(CodeInvalidEnemy, "enemy %d direction must be -1 or 1, got %d", i, e.Direction)
		}
		if e.Width > l.WorldWidth {
			return configErr(CodeInvalidEnemy, "enemy %d is wider than the world", i)
		}
	}
	return nil
}
