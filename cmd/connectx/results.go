package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectx/internal/registry"
	"github.com/vovakirdan/connectx/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [variant]",
	Short: "Show stored game results",
	Long: `Display the most recent stored results and per-variant statistics.
Results are stored by 'connectx replay --record'.

Examples:
  connectx results
  connectx results trio --limit 5
  connectx results classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent results to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete stored results for the variant")
}

func runResults(cmd *cobra.Command, args []string) {
	variant := ""
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
			fmt.Fprintln(os.Stderr, "Run 'connectx list' to see available variants.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if variant == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
			os.Exit(1)
		}
		if err := store.ClearResults(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		logger.Info("results cleared", "variant", variant)
		return
	}

	results, err := store.RecentResults(variant, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	if variant == "" {
		fmt.Println("Recent results")
	} else {
		fmt.Printf("Recent results - %s\n", variant)
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Run 'connectx replay --record <file>' to store some.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-8s  %-10s  %-12s  %5s  %s\n", "Date", "Variant", "Outcome", "Winner", "Moves", "Time")
	fmt.Printf("  %-16s  %-8s  %-10s  %-12s  %5s  %s\n", "----", "-------", "-------", "------", "-----", "----")

	for _, r := range results {
		winner := r.Winner
		if winner == "" {
			winner = "-"
		}
		elapsed := (time.Duration(r.DurationMS) * time.Millisecond).Round(time.Millisecond)
		fmt.Printf("  %-16s  %-8s  %-10s  %-12s  %5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Variant, r.Outcome, winner, r.Moves, elapsed)
	}

	fmt.Println()
	printStats(store, variant)
}

func printStats(store *storage.Store, variant string) {
	var stats []*storage.VariantStats
	if variant != "" {
		vs, err := store.VariantStats(variant)
		if err != nil {
			logger.Warn("cannot load stats", "variant", variant, "error", err)
			return
		}
		stats = append(stats, vs)
	} else {
		all, err := store.AllVariantStats()
		if err != nil {
			logger.Warn("cannot load stats", "error", err)
			return
		}
		for _, vs := range all {
			stats = append(stats, vs)
		}
		sort.Slice(stats, func(i, j int) bool { return stats[i].Variant < stats[j].Variant })
	}

	fmt.Printf("  %-8s  %5s  %5s  %5s  %6s  %9s\n", "Variant", "Games", "Wins", "Draws", "Early", "Avg moves")
	for _, vs := range stats {
		fmt.Printf("  %-8s  %5d  %5d  %5d  %6d  %9.1f\n",
			vs.Variant, vs.Games, vs.Wins, vs.Draws, vs.EarlyDraws, vs.AvgMoves)
	}
}
