package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avolkov/gridsnake/internal/core"
	"github.com/avolkov/gridsnake/internal/level"
	"github.com/avolkov/gridsnake/internal/platform/tui"
	"github.com/avolkov/gridsnake/internal/snake"
	"github.com/avolkov/gridsnake/internal/storage"
)

var (
	flagLevel      string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Grid Snake",
	Long: `Start playing Grid Snake.

Controls:
  W/A/S/D    - Steer (arrow keys also work)
  P          - Pause
  R          - Restart the run
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow movement clock
  normal - Default movement clock (95ms per step)
  hard   - Fast movement clock
  fixed  - Keep the config's movement interval as-is

Examples:
  gridsnake play
  gridsnake play --difficulty hard
  gridsnake play --level ./maps/cavern.txt
  gridsnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a level map file")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// An explicitly requested level that fails to load is fatal;
	// the fallback chain only applies when no --level is given.
	lvl, err := level.Resolve(flagLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)

	game := snake.New(lvl)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
