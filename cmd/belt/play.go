package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/neilkapoor/asteroid-belt/internal/core"
	"github.com/neilkapoor/asteroid-belt/internal/dodge"
	"github.com/neilkapoor/asteroid-belt/internal/platform/tui"
	"github.com/neilkapoor/asteroid-belt/internal/session"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game session directly, skipping the menu.

Controls:
  Left/Right, A/D  - Move the ship
  P                - Pause
  R                - Restart (after game over)
  Esc              - End the session
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Sparser belt, more hearts, five lives
  normal - Defaults from the config
  hard   - Denser belt, fewer hearts, two lives
  fixed  - Spawn rate never ramps up

Examples:
  belt play
  belt play --difficulty hard
  belt play --config ./my-dodge.yaml
  belt play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	dodge.SetConfigPath(flagConfig)
	dodge.SetDifficultyPreset(flagDifficulty)

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	rec := session.NewRecorder(store, "")
	runErr := tui.Run(dodge.New(), rec, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
