package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robots/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all problems",
	Long:  `Shows the problems in the catalog with their best recorded clear.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	names := a.catalog.Names()

	if len(names) == 0 {
		fmt.Println("No problems available.")
		return nil
	}

	var stats map[string]*storage.ProblemStats
	if store := a.openStore(); store != nil {
		stats, err = store.AllProblemStats()
		if err != nil {
			a.logger.Warn("could not read clear statistics", "error", err)
		}
		store.Close()
	}

	fmt.Printf("Problems (%d):\n", len(names))
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		maxNameLen = max(maxNameLen, len(name))
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-5s  %s\n", "#", maxNameLen, "Name", "Best", "Clears")
	fmt.Printf("  %-3s  %-*s  %-5s  %s\n", "-", maxNameLen, "----", "----", "------")

	for i, name := range names {
		best, clears := "-", 0
		if s, ok := stats[name]; ok {
			best = fmt.Sprintf("%d", s.BestMoves)
			clears = s.Clears
		}
		fmt.Printf("  %-3d  %-*s  %-5s  %d\n", i+1, maxNameLen, name, best, clears)
	}

	fmt.Println()
	fmt.Println("Run 'robots play <name>' to play a problem.")
	return nil
}
