// Package config provides YAML-based gameplay configuration loading and
// difficulty presets.
package config

// GameConfig contains the tunable gameplay parameters.
type GameConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Speed SpeedConfig `yaml:"speed"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// GridConfig defines the screen-space geometry of the tile grid.
type GridConfig struct {
	// CellSize is the edge length of one tile in screen units. Snake
	// positions are always integer multiples of it.
	CellSize int `yaml:"cell_size"`
}

// SpeedConfig defines the simulation timing.
type SpeedConfig struct {
	// MoveIntervalMS is the wall-clock movement tick in milliseconds.
	// Input and collision checks still run every rendered frame.
	MoveIntervalMS int `yaml:"move_interval_ms"`
}

// SpawnConfig is the head's spawn cell; the default heading is right.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// MoveIntervalForPreset returns the movement interval for a preset in
// milliseconds. DifficultyFixed returns 0, meaning keep the config's value.
func MoveIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 130
	case DifficultyNormal:
		return 95
	case DifficultyHard:
		return 65
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if interval := MoveIntervalForPreset(preset); interval > 0 {
		cfg.Speed.MoveIntervalMS = interval
	}
}
