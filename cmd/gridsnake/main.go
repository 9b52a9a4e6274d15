// gridsnake is a terminal snake game played on a tile grid.
//
// Usage:
//
//	gridsnake play            - Play the game
//	gridsnake scores          - Show high scores
//	gridsnake serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gridsnake/scores.db)
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
	Use:   "gridsnake",
	Short: "Grid Snake - tile-based snake in your terminal",
	Long: `Grid Snake is a terminal snake game played on a tile grid loaded
from a level file. Steer the snake onto the goal tile to grow and
score; hitting a wall or your own tail resets the run.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  gridsnake play
  gridsnake play --level ./maps/cavern.txt --difficulty hard
  gridsnake scores
  gridsnake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridsnake/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
