package config

import (
	_ "embed"
)

//go:embed defaults/gridsnake.yaml
var defaultYAML []byte

// Default returns the default gameplay configuration.
func Default() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			CellSize: 25,
		},
		Speed: SpeedConfig{
			MoveIntervalMS: 95,
		},
		Spawn: SpawnConfig{
			X: 6,
			Y: 6,
		},
	}
}
