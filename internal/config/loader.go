package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the gameplay configuration.
// Search order: customPath -> ~/.gridsnake/configs/gridsnake.yaml ->
// ./configs/gridsnake.yaml -> embedded default.
func Load(customPath string) (GameConfig, error) {
	var cfg GameConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("gridsnake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "gridsnake.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize fills zero values with defaults so a partial config file
// still yields a playable game.
func normalize(cfg GameConfig) GameConfig {
	def := Default()
	if cfg.Grid.CellSize <= 0 {
		cfg.Grid.CellSize = def.Grid.CellSize
	}
	if cfg.Speed.MoveIntervalMS <= 0 {
		cfg.Speed.MoveIntervalMS = def.Speed.MoveIntervalMS
	}
	if cfg.Spawn.X <= 0 {
		cfg.Spawn.X = def.Spawn.X
	}
	if cfg.Spawn.Y <= 0 {
		cfg.Spawn.Y = def.Spawn.Y
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "configs", filename)
}
