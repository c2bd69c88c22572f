package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ferrovax/huematch/internal/config"
	"github.com/ferrovax/huematch/internal/game"
	"github.com/ferrovax/huematch/internal/platform/tui"
	"github.com/ferrovax/huematch/internal/settings"
	"github.com/ferrovax/huematch/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Up/Down    - Select channel
  Left/Right - Adjust channel (Shift for steps of 10)
  Tab or #   - Edit hex code directly
  Enter      - Submit your color
  E          - End the game early
  Q/Ctrl+C   - Quit

Examples:
  huematch play
  huematch play --seed 42
  huematch play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works, nothing persists
		store = nil
	}

	var port settings.Store
	if store != nil {
		port = store
	} else {
		port = settings.NewMemStore()
	}
	settings.SeedDefaults(port, settings.FirstRun{
		BlindMode:      cfg.Defaults.BlindMode,
		StrictMode:     cfg.Defaults.StrictMode,
		ScoreThreshold: cfg.Defaults.ScoreThreshold,
		TimerDuration:  cfg.Defaults.TimerDuration,
	})
	mgr := settings.Load(port)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := game.NewSession(mgr, rand.New(rand.NewSource(seed)))

	runErr := tui.Run(session, store, cfg, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
