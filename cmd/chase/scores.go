package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best runs",
	Long: `Display the best runs of a variant, or a summary of every variant
when none is given.

Examples:
  chase scores
  chase scores chase_hard
  chase scores chase --limit 20
  chase scores chase_easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the runs of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			return errors.New("--clear needs a variant")
		}
		return printSummary(store)
	}

	gameID := args[0]
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown variant %q (run 'chase list' to see them)", gameID)
	}

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs of %s\n", info.Title)
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'chase play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %s\n", i+1, r.Score, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Best level: %d  Average: %.0f\n",
		stats.Runs, stats.HighScore, stats.BestLevel, stats.AvgScore)
	return nil
}

// printSummary prints one line per variant, in menu order.
func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-12s  %-5s  %-8s  %-5s  %s\n", "Variant", "Runs", "Best", "Level", "Last played")
	fmt.Printf("  %-12s  %-5s  %-8s  %-5s  %s\n", "-------", "----", "----", "-----", "-----------")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-12s  %-5d  %-8s  %-5s  %s\n", g.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-12s  %-5d  %-8d  %-5d  %s\n",
			g.ID, st.Runs, st.HighScore, st.BestLevel, st.LastPlayed.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentRuns(5)
	if err != nil {
		return err
	}
	if len(recent) > 0 {
		fmt.Println()
		fmt.Println("Recent runs:")
		for _, r := range recent {
			fmt.Printf("  %-12s  %6d  level %d  %s\n", r.GameID, r.Score, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
