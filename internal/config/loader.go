package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "platformer.yaml"

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are fine.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values that would break the simulation.
func (c Config) Validate() error {
	switch {
	case c.Physics.FrameTimeScale <= 0:
		return fmt.Errorf("physics.frame_time_scale must be positive")
	case c.Physics.JumpPower >= 0:
		return fmt.Errorf("physics.jump_power must be negative (upward)")
	case c.Physics.TerminalVelocity <= 0:
		return fmt.Errorf("physics.terminal_velocity must be positive")
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("player size must be positive")
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("viewport size must be positive")
	case c.Viewport.CameraSmoothing <= 0 || c.Viewport.CameraSmoothing > 1:
		return fmt.Errorf("viewport.camera_smoothing must be in (0, 1]")
	case c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0:
		return fmt.Errorf("viewport cell size must be positive")
	case c.Rules.Lives < 1:
		return fmt.Errorf("rules.lives must be at least 1")
	case c.Rules.TimeScale <= 0:
		return fmt.Errorf("rules.time_scale must be positive")
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
