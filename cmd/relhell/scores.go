package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/relhell/internal/platform/tui"
	"github.com/vovakirdan/relhell/internal/registry"
	"github.com/vovakirdan/relhell/internal/storage"
)

var (
	flagInteractive bool
	flagStats       bool
	flagClear       bool
	flagRunID       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the furthest flights",
	Long: `Display the top 10 runs of a variant, ranked by the global time
reached. With --interactive, browse every variant in a scoreboard.

Examples:
  relhell scores
  relhell scores relhell-bare
  relhell scores -i
  relhell scores --stats
  relhell scores --run 6f1c2a9e-0b4d-4e1a-9c3f-2d7e8a5b1c40
  relhell scores relhell-bare --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the scoreboard")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-variant totals")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every run of the variant")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run by its ID")
	scoresCmd.MarkFlagsMutuallyExclusive("interactive", "stats", "clear", "run")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open runs database: %w", err)
	}
	defer store.Close()

	switch {
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	case flagStats:
		return printStats(cmd.OutOrStdout(), store)
	case flagRunID != "":
		return printRun(cmd.OutOrStdout(), store, flagRunID)
	}

	variant, err := variantArg(args)
	if err != nil {
		return err
	}
	if flagClear {
		if err := store.ClearRuns(variant); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared every run of %s.\n", variant)
		return nil
	}
	runs, err := store.TopRuns(variant, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Furthest flights - %s\n", variant)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'relhell play %s' to set the first one!\n", variant)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-7s  %-24s  %s\n", "Rank", "Score", "Hits", "Gold", "τ", "Ended", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-7s  %-24s  %s\n", "----", "-----", "----", "----", "-", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8.2f  %-5d  %-5d  %-7.1f  %-24s  %s\n",
			i+1, r.Score, r.RocksHit, r.Gold, r.ProperTime, r.Reason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if high, err := store.HighScore(variant); err == nil {
		fmt.Println()
		fmt.Printf("Best: %.2f\n", high)
	}
	return nil
}

func printStats(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-14s  %-5s  %-8s  %-8s  %-6s  %s\n", "Variant", "Runs", "Best", "Average", "Hits", "Last played")
	fmt.Fprintf(w, "  %-14s  %-5s  %-8s  %-8s  %-6s  %s\n", "-------", "----", "----", "-------", "----", "-----------")
	for _, g := range registry.List() {
		v, ok := stats[g.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-14s  %-5d  %-8.2f  %-8.2f  %-6d  %s\n",
			v.Variant, v.Runs, v.HighScore, v.AvgScore, v.RocksHit, v.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRun(w io.Writer, store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with ID %q", id)
	}

	fmt.Fprintf(w, "Run:          %s\n", r.ID)
	fmt.Fprintf(w, "Variant:      %s\n", r.Variant)
	fmt.Fprintf(w, "Seed:         %d\n", r.Seed)
	fmt.Fprintf(w, "Score:        %.3f\n", r.Score)
	fmt.Fprintf(w, "Proper time:  %.3f\n", r.ProperTime)
	fmt.Fprintf(w, "Rocks hit:    %d\n", r.RocksHit)
	fmt.Fprintf(w, "Resources:    %d (gold %d)\n", r.Resources, r.Gold)
	fmt.Fprintf(w, "Ended:        %s\n", r.Reason)
	fmt.Fprintf(w, "Date:         %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
