package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vbelenko/termblast/internal/audio"
	"github.com/vbelenko/termblast/internal/config"
	"github.com/vbelenko/termblast/internal/core"
	"github.com/vbelenko/termblast/internal/game"
	"github.com/vbelenko/termblast/internal/platform/tui"
	"github.com/vbelenko/termblast/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  A/Left, D/Right - Move
  Space           - Shoot (costs 3 charges; catch enemy shots to charge)
  Enter           - Start / continue
  Tab             - Switch between campaign and boss gate
  R               - Restart after death
  P/Esc           - Pause
  Q/Ctrl+C        - Quit

Examples:
  termblast play
  termblast play --seed 42
  termblast play --config ./my-termblast.yaml
  termblast play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	gcfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sounds game.Sounds = game.NopSounds{}
	if !flagMute {
		svc := audio.New()
		if audioErr := svc.Init(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
		} else {
			sounds = svc
			defer svc.Close()
		}
	}

	// The terminal is in raw alt-screen mode while playing; keep log
	// output away from it.
	logger := log.New(io.Discard)

	runErr := tui.Run(gcfg, store, rcfg, sounds, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
