package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// loadTuning loads the physics/rules config and applies a difficulty preset.
func loadTuning(path, difficulty string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		preset := config.ParsePreset(difficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// loadLevels returns the built-in levels merged with --levels-dir.
func loadLevels() ([]level.Level, error) {
	levels, err := level.Catalog(expandHome(flagLevelsDir))
	if err != nil {
		return nil, fmt.Errorf("loading levels: %w", err)
	}
	return levels, nil
}

// openStore opens the score database, or returns nil and logs a warning.
// The game runs without persistence in that case.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
