// Package config provides YAML-based tuning for the platformer: physics
// constants, viewport, scoring rules and difficulty presets.
package config

// Config contains all tunables for a platformer session.
type Config struct {
	Physics  Physics  `yaml:"physics"`
	Player   Player   `yaml:"player"`
	Viewport Viewport `yaml:"viewport"`
	Rules    Rules    `yaml:"rules"`
	Controls Controls `yaml:"controls"`
}

// Physics defines the integration and collision constants.
// Velocities are in pixels per 1/60 s frame; FrameTimeScale converts them.
type Physics struct {
	Speed               float64 `yaml:"speed"`
	JumpPower           float64 `yaml:"jump_power"` // negative = upward
	Gravity             float64 `yaml:"gravity"`
	TerminalVelocity    float64 `yaml:"terminal_velocity"`
	FrameTimeScale      float64 `yaml:"frame_time_scale"`
	LandingTolerance    float64 `yaml:"landing_tolerance"`
	StompBounce         float64 `yaml:"stomp_bounce"`
	HitBounce           float64 `yaml:"hit_bounce"`
	HitKnockback        float64 `yaml:"hit_knockback"`
	InvulnerableSeconds float64 `yaml:"invulnerable_seconds"`
	PickupRadius        float64 `yaml:"pickup_radius"`
	WinRadius           float64 `yaml:"win_radius"`
	FalloutMargin       float64 `yaml:"fallout_margin"`
	MaxDeltaSeconds     float64 `yaml:"max_delta_seconds"`
}

// Player defines the player's body size.
type Player struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Viewport defines the visible window and the world-to-cell mapping.
type Viewport struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	CameraSmoothing float64 `yaml:"camera_smoothing"`
	CellWidth       float64 `yaml:"cell_width"`  // world pixels per terminal column
	CellHeight      float64 `yaml:"cell_height"` // world pixels per terminal row
}

// Rules defines session scoring and limits.
type Rules struct {
	Lives       int     `yaml:"lives"`
	CoinPoints  int     `yaml:"coin_points"`
	StompPoints int     `yaml:"stomp_points"`
	TimeScale   float64 `yaml:"time_scale"` // multiplier on the level time limit
}

// Controls defines host input handling.
type Controls struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fixed and empty presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		cfg.Rules.TimeScale = 1.5
	case DifficultyNormal:
		cfg.Rules.Lives = 3
		cfg.Rules.TimeScale = 1.0
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Rules.TimeScale = 0.75
	}
}
