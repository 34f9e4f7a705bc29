package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/neilkapoor/asteroid-belt/internal/auth"
	"github.com/neilkapoor/asteroid-belt/internal/core"
	"github.com/neilkapoor/asteroid-belt/internal/dodge"
	"github.com/neilkapoor/asteroid-belt/internal/platform/tui"
)

var flagPassPath string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Log in and start from the main menu",
	Long: `Start in interactive menu mode. You log in (or register) first, then
pick between playing, viewing the high scores, and quitting. After a game
ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select
  Q            - Quit

Examples:
  belt menu
  belt menu --fps 30
  belt menu --pass ./pass.txt`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPassPath, "pass", "~/.belt/pass.txt", "Path to credentials file")
}

func runMenu(_ *cobra.Command, _ []string) {
	manager, err := auth.NewManager(flagPassPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	username, err := tui.RunLogin(manager)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if username == "" {
		// Login aborted
		return
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
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

	runErr := tui.RunSession(func() tui.Game { return dodge.New() }, store, cfg, username)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
