// termblast is a terminal arcade shooter played locally or over SSH.
//
// Usage:
//
//	termblast play           - Play in the current terminal
//	termblast serve          - Start SSH server for remote play
//	termblast runs           - Show run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.termblast/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termblast",
	Short: "termblast - an arcade shooter in your terminal",
	Long: `termblast is a fixed-shooter arcade game played entirely in the
terminal. Fight through the campaign stages or take the boss gate
straight to the multi-phase boss.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  runs     - View run history

Examples:
  termblast play
  termblast play --seed 42
  termblast serve --ssh :2222
  termblast runs`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termblast/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}
