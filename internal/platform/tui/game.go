package tui

import (
	"github.com/avolkov/gridsnake/internal/core"
)

// Game is the interface the platform drives. The game contains pure
// logic with no Bubble Tea dependencies; the platform handles input
// mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one rendered frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
