// Package world holds the runtime entities of a platformer session and
// builds them from level data.
package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// Player is the controlled actor. Only the physics engine mutates it.
type Player struct {
	X, Y          float64
	Width, Height float64
	VelX, VelY    float64
	Speed         float64
	JumpPower     float64 // negative = upward
	Gravity       float64
	Grounded      bool
	FacingRight   bool

	// Invulnerable is the remaining post-hit immunity in seconds.
	Invulnerable float64
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Bottom returns the y-coordinate of the player's feet.
func (p *Player) Bottom() float64 {
	return p.Y + p.Height
}

// Platform is an immutable rectangle. Kind is cosmetic.
type Platform struct {
	Box  core.Box
	Kind string
}

// Coin is a collectible. Collected flips false->true once per session.
type Coin struct {
	X, Y      float64 // center
	Radius    float64
	Collected bool
	Phase     float64 // animation offset, cosmetic
}

// Enemy patrols horizontally between MinX and MaxX.
// Active flips true->false once, on a stomp.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Direction     int // -1 or +1
	Active        bool
	MinX, MaxX    float64
}

// Box returns the enemy's bounding box.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.Width, e.Height)
}

// Castle is the goal. Reached flips false->true once, only after every
// required coin was collected.
type Castle struct {
	Box     core.Box
	Reached bool
}

// World is the complete mutable state of one session's level.
type World struct {
	LevelID   string
	LevelName string

	Width      float64
	StartX     float64
	StartY     float64
	TimeLimit  int
	TotalCoins int

	Player    Player
	Platforms []Platform
	Coins     []Coin
	Enemies   []Enemy
	Castle    Castle
}

// CollectedCoins counts coins picked up so far.
func (w *World) CollectedCoins() int {
	n := 0
	for i := range w.Coins {
		if w.Coins[i].Collected {
			n++
		}
	}
	return n
}

// ActiveEnemies counts enemies still patrolling.
func (w *World) ActiveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Active {
			n++
		}
	}
	return n
}

// CastleOpen reports whether enough coins were collected to win.
func (w *World) CastleOpen() bool {
	return w.CollectedCoins() >= w.TotalCoins
}

// Snapshot returns a deep copy safe to hand to a renderer.
func (w *World) Snapshot() World {
	s := *w
	s.Platforms = append([]Platform(nil), w.Platforms...)
	s.Coins = append([]Coin(nil), w.Coins...)
	s.Enemies = append([]Enemy(nil), w.Enemies...)
	return s
}
