package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() disagree:\n%+v\n%+v", cfg, Default())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  speed: 7\nrules:\n  lives: 4\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Physics.Speed != 7 {
		t.Errorf("Speed = %v, expected 7", cfg.Physics.Speed)
	}
	if cfg.Rules.Lives != 4 {
		t.Errorf("Lives = %d, expected 4", cfg.Rules.Lives)
	}
	if cfg.Physics.Gravity != Default().Physics.Gravity {
		t.Errorf("Gravity should keep default, got %v", cfg.Physics.Gravity)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"upward gravity jump", "physics:\n  jump_power: 5\n"},
		{"zero frame scale", "physics:\n  frame_time_scale: 0\n"},
		{"no lives", "rules:\n  lives: 0\n"},
		{"smoothing above one", "viewport:\n  camera_smoothing: 2\n"},
		{"malformed", "physics: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  width: 24\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Player.Width != 24 {
		t.Errorf("Player.Width = %v, expected 24", cfg.Player.Width)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		timeScale float64
	}{
		{DifficultyEasy, 5, 1.5},
		{DifficultyNormal, 3, 1.0},
		{DifficultyHard, 2, 0.75},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Rules.Lives != tc.lives || cfg.Rules.TimeScale != tc.timeScale {
				t.Errorf("got lives=%d scale=%v, expected lives=%d scale=%v",
					cfg.Rules.Lives, cfg.Rules.TimeScale, tc.lives, tc.timeScale)
			}
		})
	}

	cfg := Default()
	cfg.Rules.Lives = 9
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Rules.Lives != 9 {
		t.Error("fixed preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should map to empty")
	}
}
