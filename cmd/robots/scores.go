package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robots/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [problem]",
	Short: "Show recorded clears",
	Long: `Without an argument, summarize the clears of every problem.
With a problem name, list its shortest clears.

Examples:
  robots scores
  robots scores classic-01 --limit 20
  robots scores classic-01 --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of clears to show")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the recorded clears of the problem")
}

func runScores(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 && flagScoresReset {
		return errors.New("--reset needs a problem name")
	}
	if len(args) == 1 {
		if err := a.checkKnown(args[0]); err != nil {
			return err
		}
	}

	// Open clear storage
	store, err := storage.Open(a.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening clear records: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(a, store)
	}

	name := args[0]
	if flagScoresReset {
		if err := store.DeleteClears(name); err != nil {
			return err
		}
		a.logger.Info("clears deleted", "problem", name)
		fmt.Printf("Deleted the clears of %s.\n", name)
		return nil
	}

	clears, err := store.BestClears(name, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving clears: %w", err)
	}

	fmt.Printf("Best clears - %s\n", name)
	fmt.Println()

	if len(clears) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'robots play %s' to set the first record!\n", name)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-6s  %-10s  %-16s  %s\n", "Rank", "Moves", "Target", "Player", "Date", "Solution")
	fmt.Printf("  %-4s  %-5s  %-6s  %-10s  %-16s  %s\n", "----", "-----", "------", "------", "----", "--------")

	for i, c := range clears {
		player := c.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-5d  %-6s  %-10s  %-16s  %s\n",
			i+1, c.Moves, c.Target, player, c.CreatedAt.Format("2006-01-02 15:04"), c.Solution)
	}
	return nil
}

func printSummary(a *app, store *storage.Store) error {
	stats, err := store.AllProblemStats()
	if err != nil {
		return fmt.Errorf("retrieving clears: %w", err)
	}

	fmt.Println("Clears by problem")
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("No clears recorded yet.")
		return nil
	}

	fmt.Printf("  %-20s  %-6s  %-7s  %-4s  %-5s  %s\n", "Problem", "Clears", "Players", "Best", "Avg", "Last")
	fmt.Printf("  %-20s  %-6s  %-7s  %-4s  %-5s  %s\n", "-------", "------", "-------", "----", "---", "----")

	for _, name := range a.catalog.Names() {
		s, ok := stats[name]
		if !ok {
			continue
		}
		fmt.Printf("  %-20s  %-6d  %-7d  %-4d  %-5.1f  %s\n",
			name, s.Clears, s.Players, s.BestMoves, s.AvgMoves, s.LastCleared.Format("2006-01-02 15:04"))
	}
	return nil
}
