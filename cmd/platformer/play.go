package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the platformer",
	Long: `Start the level menu, or jump straight into the given level.

Controls:
  Left/Right, A/D   - Run
  Space/Up/W        - Jump
  P/Esc             - Pause
  Enter             - Retry (after the end)
  B                 - Back to levels (paused or ended)
  Ctrl+S            - Save a screenshot
  Ctrl+C            - Quit

Difficulty options:
  easy   - 5 lives, 50% more time
  normal - 3 lives
  hard   - 2 lives, 25% less time
  fixed  - Use the config file as is

Examples:
  platformer play
  platformer play 01-meadow
  platformer play --difficulty easy
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger("platformer", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, err := loadTuning(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW, runtime.ScreenH = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	start := ""
	if len(args) == 1 {
		start = args[0]
	}

	player := os.Getenv("USER")
	logger.Debug("starting", "levels", len(levels), "start", start, "difficulty", flagDifficulty)

	return tui.Run(tui.Options{
		Levels:     levels,
		Config:     tuning,
		Runtime:    runtime,
		Store:      store,
		Player:     player,
		Logger:     logger,
		StartLevel: start,
	})
}
