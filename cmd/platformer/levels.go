package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List, validate and export levels",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows built-in levels and those found in --levels-dir.`,
	RunE:  runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files for errors",
	Long: `Parses each file (.yaml, .yml, .toml or .json) and builds a world
from it with the current config, reporting any configuration error.

Examples:
  platformer levels validate ./castle.yaml
  platformer levels validate levels/*.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLevelsValidate,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Print a level as YAML",
	Long: `Writes the level to stdout in YAML, a convenient starting point
for a custom level.

Example:
  platformer levels export 01-meadow > ~/.platformer/levels/my-meadow.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runLevelsExport,
}

func init() {
	levelsValidateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	levelsCmd.AddCommand(levelsListCmd, levelsValidateCmd, levelsExportCmd)
}

func runLevelsList(_ *cobra.Command, _ []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2
	for _, l := range levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %5s  %5s  %s\n", maxIDLen, "ID", "Name", "Time", "Coins", "Source")
	fmt.Printf("  %-*s  %-20s  %5s  %5s  %s\n", maxIDLen, "--", "----", "----", "-----", "------")
	for _, l := range levels {
		source := "built-in"
		if l.FilePath != "" {
			source = l.FilePath
		}
		fmt.Printf("  %-*s  %-20s  %4ds  %5d  %s\n", maxIDLen, l.ID, l.Title(), l.TimeLimit, l.RequiredCoins(), source)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
	return nil
}

var errInvalidLevels = errors.New("some levels are invalid")

func runLevelsValidate(_ *cobra.Command, args []string) error {
	tuning, err := loadTuning(flagConfig, "")
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		lvl, err := level.LoadFile(path)
		if err == nil {
			_, err = world.NewBuilder(tuning, rand.New(rand.NewSource(1))).Build(lvl)
		}
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Printf("ok   %s (%s)\n", path, lvl.ID)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidLevels, failed, len(args))
	}
	return nil
}

func runLevelsExport(_ *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}
	for _, l := range levels {
		if l.ID != args[0] {
			continue
		}
		data, err := level.EncodeYAML(l)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	return fmt.Errorf("unknown level %q, run 'platformer levels list'", args[0])
}
