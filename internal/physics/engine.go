// Package physics advances a world by one tick: input, gravity, platform
// landing, enemy patrol and contact tests. It reports what happened as
// events and leaves scoring to the caller.
package physics

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Engine integrates worlds with a fixed set of constants.
type Engine struct {
	cfg            config.Physics
	viewportHeight float64
}

// NewEngine creates an engine from the physics and viewport sections.
func NewEngine(cfg config.Config) *Engine {
	return &Engine{cfg: cfg.Physics, viewportHeight: cfg.Viewport.Height}
}

// Update advances w by dt seconds and returns the events in the order they
// occurred. A non-positive dt leaves the world untouched.
func (e *Engine) Update(w *world.World, in core.Input, dt float64) []Event {
	if dt <= 0 {
		return nil
	}
	if e.cfg.MaxDeltaSeconds > 0 && dt > e.cfg.MaxDeltaSeconds {
		dt = e.cfg.MaxDeltaSeconds
	}
	scale := e.cfg.FrameTimeScale * dt

	var events []Event
	p := &w.Player

	e.applyInput(p, in)

	p.VelY += p.Gravity
	if p.VelY > e.cfg.TerminalVelocity {
		p.VelY = e.cfg.TerminalVelocity
	}
	p.X += p.VelX * scale
	p.Y += p.VelY * scale
	p.X = core.ClampF(p.X, 0, w.Width-p.Width)

	e.land(w)

	if p.Y > e.viewportHeight+e.cfg.FalloutMargin {
		e.respawn(w)
		events = append(events, PlayerFellEvent{})
	}

	if p.Invulnerable > 0 {
		p.Invulnerable -= dt
		if p.Invulnerable < 0 {
			p.Invulnerable = 0
		}
	}

	patrol(w, scale)
	events = e.collectCoins(w, events)
	events = e.touchEnemies(w, events)

	if !w.Castle.Reached && w.CastleOpen() &&
		core.CenterDist(p.Box(), w.Castle.Box) < e.cfg.WinRadius {
		w.Castle.Reached = true
		events = append(events, CastleReachedEvent{})
	}

	return events
}

// applyInput sets horizontal velocity and starts a jump. With both
// directions held, right wins.
func (e *Engine) applyInput(p *world.Player, in core.Input) {
	p.VelX = 0
	if in.MoveLeft {
		p.VelX = -p.Speed
		p.FacingRight = false
	}
	if in.MoveRight {
		p.VelX = p.Speed
		p.FacingRight = true
	}
	if in.Jump && p.Grounded {
		p.VelY = p.JumpPower
		p.Grounded = false
	}
}

// land snaps a falling player onto the first platform whose top band the
// feet are inside. Platforms are one-way: rising players pass through.
func (e *Engine) land(w *world.World) {
	p := &w.Player
	box := p.Box()
	bottom := box.Bottom()
	for i := range w.Platforms {
		pl := w.Platforms[i].Box
		if !box.OverlapsX(pl) {
			continue
		}
		if bottom >= pl.Y && bottom < pl.Y+pl.Height+e.cfg.LandingTolerance && p.VelY > 0 {
			p.Y = pl.Y - p.Height
			p.VelY = 0
			p.Grounded = true
			return
		}
	}
	p.Grounded = false
}

func (e *Engine) respawn(w *world.World) {
	p := &w.Player
	p.X = w.StartX
	p.Y = w.StartY
	p.VelX = 0
	p.VelY = 0
	p.Grounded = false
}

// patrol moves active enemies and reverses them at their bounds.
func patrol(w *world.World, scale float64) {
	for i := range w.Enemies {
		en := &w.Enemies[i]
		if !en.Active {
			continue
		}
		en.X += en.Speed * float64(en.Direction) * scale
		if en.X <= en.MinX {
			en.X = en.MinX
			en.Direction = 1
		} else if en.X >= en.MaxX {
			en.X = en.MaxX
			en.Direction = -1
		}
	}
}

func (e *Engine) collectCoins(w *world.World, events []Event) []Event {
	cx, cy := w.Player.Box().Center()
	for i := range w.Coins {
		c := &w.Coins[i]
		if c.Collected {
			continue
		}
		if core.Dist(cx, cy, c.X, c.Y) < e.cfg.PickupRadius {
			c.Collected = true
			events = append(events, CoinCollectedEvent{Coin: i})
		}
	}
	return events
}

// touchEnemies resolves contact with every overlapping active enemy. A
// falling player whose feet are above the enemy's middle stomps it;
// anything else is a hit, ignored while invulnerable. Falling is decided
// once per tick, so landing across two enemies stomps both.
func (e *Engine) touchEnemies(w *world.World, events []Event) []Event {
	p := &w.Player
	falling := p.VelY > 0
	for i := range w.Enemies {
		en := &w.Enemies[i]
		if !en.Active {
			continue
		}
		eb := en.Box()
		if !p.Box().Intersects(eb) {
			continue
		}
		if falling && p.Bottom() < eb.MidY() {
			en.Active = false
			p.VelY = e.cfg.StompBounce
			events = append(events, EnemyStompedEvent{Enemy: i})
			continue
		}
		if p.Invulnerable > 0 {
			continue
		}
		p.Invulnerable = e.cfg.InvulnerableSeconds
		events = append(events, PlayerHitEvent{Enemy: i})
	}
	return events
}

// Knockback pushes the player away from the enemy in hit and bounces it.
// The session applies it only when the hit was not fatal.
func (e *Engine) Knockback(w *world.World, hit PlayerHitEvent) {
	if hit.Enemy < 0 || hit.Enemy >= len(w.Enemies) {
		return
	}
	p := &w.Player
	px, _ := p.Box().Center()
	ex, _ := w.Enemies[hit.Enemy].Box().Center()

	dir := 1.0
	if px < ex {
		dir = -1
	}
	p.X = core.ClampF(p.X+dir*e.cfg.HitKnockback, 0, w.Width-p.Width)
	p.VelY = e.cfg.HitBounce
	p.Grounded = false
}
