package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: Physics{
			Speed:               5,
			JumpPower:           -12,
			Gravity:             0.5,
			TerminalVelocity:    15,
			FrameTimeScale:      60,
			LandingTolerance:    10,
			StompBounce:         -8,
			HitBounce:           -6,
			HitKnockback:        40,
			InvulnerableSeconds: 1.0,
			PickupRadius:        20,
			WinRadius:           100,
			FalloutMargin:       100,
			MaxDeltaSeconds:     0.1,
		},
		Player: Player{
			Width:  30,
			Height: 40,
		},
		Viewport: Viewport{
			Width:           800,
			Height:          480,
			CameraSmoothing: 0.1,
			CellWidth:       10,
			CellHeight:      20,
		},
		Rules: Rules{
			Lives:       3,
			CoinPoints:  100,
			StompPoints: 200,
			TimeScale:   1.0,
		},
		Controls: Controls{
			HoldTicks: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config dump`.
func DefaultYAML() []byte {
	return defaultYAML
}
