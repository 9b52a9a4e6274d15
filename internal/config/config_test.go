package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Grid.CellSize != 25 {
		t.Errorf("CellSize = %d, expected 25", cfg.Grid.CellSize)
	}
	if cfg.Speed.MoveIntervalMS != 95 {
		t.Errorf("MoveIntervalMS = %d, expected 95", cfg.Speed.MoveIntervalMS)
	}
	if cfg.Spawn.X != 6 || cfg.Spawn.Y != 6 {
		t.Errorf("Spawn = (%d, %d), expected (6, 6)", cfg.Spawn.X, cfg.Spawn.Y)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "grid:\n  cell_size: 10\nspeed:\n  move_interval_ms: 50\nspawn:\n  x: 2\n  y: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.CellSize != 10 {
		t.Errorf("CellSize = %d, expected 10", cfg.Grid.CellSize)
	}
	if cfg.Speed.MoveIntervalMS != 50 {
		t.Errorf("MoveIntervalMS = %d, expected 50", cfg.Speed.MoveIntervalMS)
	}
	if cfg.Spawn.X != 2 || cfg.Spawn.Y != 3 {
		t.Errorf("Spawn = (%d, %d), expected (2, 3)", cfg.Spawn.X, cfg.Spawn.Y)
	}
}

func TestLoadPartialConfigNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  cell_size: 40\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.CellSize != 40 {
		t.Errorf("CellSize = %d, expected 40", cfg.Grid.CellSize)
	}
	// Unset fields fall back to defaults
	if cfg.Speed.MoveIntervalMS != 95 {
		t.Errorf("MoveIntervalMS = %d, expected default 95", cfg.Speed.MoveIntervalMS)
	}
	if cfg.Spawn.X != 6 {
		t.Errorf("Spawn.X = %d, expected default 6", cfg.Spawn.X)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load of a missing explicit config should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name     string
		preset   DifficultyPreset
		expected int
	}{
		{"easy slows movement", DifficultyEasy, 130},
		{"normal is baseline", DifficultyNormal, 95},
		{"hard speeds movement", DifficultyHard, 65},
		{"fixed keeps config value", DifficultyFixed, 42},
		{"unknown keeps config value", DifficultyPreset(""), 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Speed.MoveIntervalMS = 42
			ApplyPreset(&cfg, tc.preset)
			if cfg.Speed.MoveIntervalMS != tc.expected {
				t.Errorf("MoveIntervalMS = %d, expected %d", cfg.Speed.MoveIntervalMS, tc.expected)
			}
		})
	}
}
