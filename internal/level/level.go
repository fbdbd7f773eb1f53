// Package level describes platformer worlds as static data and loads them
// from YAML, TOML or JSON files. It performs no geometry checks; the world
// builder validates a level when it is instantiated.
package level

// Point is a position in world pixels.
type Point struct {
	X float64 `yaml:"x" toml:"x" json:"x"`
	Y float64 `yaml:"y" toml:"y" json:"y"`
}

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X      float64 `yaml:"x" toml:"x" json:"x"`
	Y      float64 `yaml:"y" toml:"y" json:"y"`
	Width  float64 `yaml:"width" toml:"width" json:"width"`
	Height float64 `yaml:"height" toml:"height" json:"height"`
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Platform kinds. Only TypeGround matters to the simulation (coins are
// never placed on ground); the rest are cosmetic.
const (
	TypeGround   = "ground"
	TypePlatform = "platform"
	TypeSecret   = "secret"
)

// Platform is a static rectangle the player can land on.
type Platform struct {
	X      float64 `yaml:"x" toml:"x" json:"x"`
	Y      float64 `yaml:"y" toml:"y" json:"y"`
	Width  float64 `yaml:"width" toml:"width" json:"width"`
	Height float64 `yaml:"height" toml:"height" json:"height"`
	Type   string  `yaml:"type" toml:"type" json:"type"`
}

// Bounds returns the platform rectangle.
func (p Platform) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// IsGround reports whether the platform is a ground segment.
func (p Platform) IsGround() bool {
	return p.Type == TypeGround
}

// Enemy describes a patrolling enemy.
// MoveRange, when positive, is the half-width of the patrol span around X.
type Enemy struct {
	X         float64 `yaml:"x" toml:"x" json:"x"`
	Y         float64 `yaml:"y" toml:"y" json:"y"`
	Width     float64 `yaml:"width" toml:"width" json:"width"`
	Height    float64 `yaml:"height" toml:"height" json:"height"`
	Speed     float64 `yaml:"speed" toml:"speed" json:"speed"`
	Direction int     `yaml:"direction" toml:"direction" json:"direction"`
	MoveRange float64 `yaml:"move_range,omitempty" toml:"move_range,omitempty" json:"moveRange,omitempty"`
}

// Level is the complete static description of a world.
//
// Coins are either listed explicitly or, when Coins is empty, placed at
// random on non-ground platforms: max(CoinCount, TotalCoins) of them.
type Level struct {
	ID          string     `yaml:"id" toml:"id" json:"id"`
	Name        string     `yaml:"name" toml:"name" json:"name"`
	WorldWidth  float64    `yaml:"world_width" toml:"world_width" json:"worldWidth"`
	PlayerStart Point      `yaml:"player_start" toml:"player_start" json:"playerStart"`
	TimeLimit   int        `yaml:"time_limit" toml:"time_limit" json:"timeLimit"`
	TotalCoins  int        `yaml:"total_coins" toml:"total_coins" json:"totalCoins"`
	CoinCount   int        `yaml:"coin_count,omitempty" toml:"coin_count,omitempty" json:"coinCount,omitempty"`
	Platforms   []Platform `yaml:"platforms" toml:"platforms" json:"platforms"`
	Coins       []Point    `yaml:"coins,omitempty" toml:"coins,omitempty" json:"coins,omitempty"`
	Enemies     []Enemy    `yaml:"enemies,omitempty" toml:"enemies,omitempty" json:"enemies,omitempty"`
	Castle      Rect       `yaml:"castle" toml:"castle" json:"castle"`

	// FilePath is where the level was loaded from; empty for built-ins.
	FilePath string `yaml:"-" toml:"-" json:"-"`
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// HasExplicitCoins reports whether coin positions are authored.
func (l *Level) HasExplicitCoins() bool {
	return len(l.Coins) > 0
}

// RequiredCoins returns how many coins must be collected to open the castle.
// An explicit coin list with TotalCoins unset requires every listed coin.
func (l *Level) RequiredCoins() int {
	if l.TotalCoins == 0 && l.HasExplicitCoins() {
		return len(l.Coins)
	}
	return l.TotalCoins
}

// RandomCoinCount returns how many coins random placement must produce.
func (l *Level) RandomCoinCount() int {
	if l.CoinCount > l.TotalCoins {
		return l.CoinCount
	}
	return l.TotalCoins
}

// WithTimeScale returns a copy of the level with its time limit scaled.
// The result is never below one second.
func (l Level) WithTimeScale(scale float64) Level {
	if scale <= 0 || scale == 1 {
		return l
	}
	t := int(float64(l.TimeLimit)*scale + 0.5)
	if t < 1 {
		t = 1
	}
	l.TimeLimit = t
	return l
}
