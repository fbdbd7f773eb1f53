// platformer is a side-scrolling platformer for the terminal.
//
// Usage:
//
//	platformer play [level]          - Play, starting at the level menu or a given level
//	platformer levels list           - List available levels
//	platformer levels validate <f>   - Check level files
//	platformer levels export <id>    - Print a level as YAML
//	platformer scores [level]        - Show best runs
//	platformer serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible coin placement
//	--db <path>           - Set database path (default: ~/.platformer/scores.db)
//	--levels-dir <path>   - Extra level directory (default: ~/.platformer/levels)
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Terminal platformer - run, jump, stomp, collect coins",
	Long: `A side-scrolling platformer that runs in your terminal.

Collect the required coins, avoid or stomp the enemies and reach the
castle before the clock runs out.

Available commands:
  play     - Play (level menu, or a level directly)
  levels   - List, validate and export levels
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play 02-canyon --difficulty hard
  platformer levels validate ./my-level.toml
  platformer serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "~/.platformer/levels", "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
