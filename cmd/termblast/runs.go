package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vbelenko/termblast/internal/platform/tui"
	"github.com/vbelenko/termblast/internal/storage"
)

var flagRunsPlain bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show run history",
	Long: `Display recorded runs for both the campaign and the boss fight.

By default this opens an interactive browser; --plain prints a table
to stdout instead.

Examples:
  termblast runs
  termblast runs --plain`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print runs to stdout instead of the interactive view")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsPlain {
		printRuns(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing run history: %v\n", err)
		os.Exit(1)
	}
}

// printRuns writes the recent runs as a plain table.
func printRuns(store *storage.Store) {
	runs, err := store.RecentRuns(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termblast play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-9s  %s\n", "Rank", "Mode", "Result", "Stage", "Frames", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-9s  %s\n", "----", "----", "------", "-----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-9s  %-6d  %-9d  %s\n",
			i+1, r.Mode, r.Result, r.Stage+1, r.Frames,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.BestWin(storage.ModeNormal); err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Fastest campaign win: %d frames\n", best.Frames)
	}
}
