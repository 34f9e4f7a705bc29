// belt is a terminal dodge-and-collect arcade game: steer your ship,
// dodge the asteroid belt, catch hearts for extra lives.
//
// Usage:
//
//	belt play                - Start a game directly
//	belt menu                - Log in and start from the main menu
//	belt scores              - Show the high score table
//	belt serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--scores <path>  - Score file path (default: ~/.belt/scores.txt)
//	--db <path>      - Use a SQLite score database instead of the score file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neilkapoor/asteroid-belt/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagScoresPath string
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "belt",
	Short: "Asteroid Belt - dodge asteroids in your terminal",
	Long: `Asteroid Belt is a terminal arcade game. Steer your ship left and
right at the bottom of the field, dodge the falling asteroids, and catch
hearts for extra lives. Every asteroid that passes you is worth points,
and the belt gets denser the longer you survive.

Available commands:
  play     - Start a game directly
  menu     - Log in and start from the main menu
  scores   - View the high score table
  serve    - Start SSH server for remote play

Examples:
  belt play
  belt play --difficulty hard
  belt menu
  belt serve --ssh :2222
  belt scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "~/.belt/scores.txt", "Path to score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to SQLite score database (overrides --scores)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openStore opens the configured score store: SQLite when --db is set,
// the append-only score file otherwise.
func openStore() (storage.Store, error) {
	if flagDBPath != "" {
		return storage.OpenSQL(flagDBPath)
	}
	return storage.OpenFile(flagScoresPath)
}
