package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best runs",
	Long: `Without arguments, shows per-level statistics. With a level ID,
shows the best runs for that level.

Examples:
  platformer scores
  platformer scores 01-meadow --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printStats(store, levels)
	}

	levelID := args[0]
	title := levelID
	for _, l := range levels {
		if l.ID == levelID {
			title = l.Title()
		}
	}

	runs, err := store.TopRuns(levelID, flagScoresLimit)
	if err != nil {
		return err
	}
	best, err := store.BestScore(levelID)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s (best %d)\n", title, best)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("  No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-5s  %7s  %-6s  %5s  %5s  %4s  %-10s  %s\n", "Rank", "Score", "Result", "Coins", "Kills", "Left", "Player", "Date")
	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "clear"
		}
		fmt.Printf("  #%-4d  %7d  %-6s  %5d  %5d  %3ds  %-10s  %s\n",
			i+1, r.Score, result, r.Coins, r.Kills, r.TimeLeft, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store, levels []level.Level) error {
	stats, err := store.GetAllLevelsStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	titles := make(map[string]string, len(levels))
	for _, l := range levels {
		titles[l.ID] = l.Title()
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %5s  %5s  %7s  %8s  %s\n", "Level", "Runs", "Wins", "Best", "Average", "Last played")
	for _, id := range ids {
		s := stats[id]
		name := titles[id]
		if name == "" {
			name = id
		}
		fmt.Printf("  %-20s  %5d  %5d  %7d  %8.1f  %s\n",
			name, s.Runs, s.Wins, s.BestScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
