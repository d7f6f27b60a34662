package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestParseConfigDefaults verifies an empty document yields the defaults.
func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("parse empty: %v", err)
	}
	def := DefaultConfig()
	if cfg.Lives != def.Lives || cfg.Grid != def.Grid || len(cfg.Stages) != len(def.Stages) {
		t.Errorf("empty config differs from defaults: %+v", cfg)
	}
	if lo, hi := cfg.Blast(); lo != 2 || hi != 3 {
		t.Errorf("default blast = [-%d,%d], want [-2,3]", lo, hi)
	}
}

// TestParseConfigOverrides checks partial files keep untouched defaults.
func TestParseConfigOverrides(t *testing.T) {
	data := []byte(`
lives: 5
symmetric_blast: true
grid:
  cols: 8
stages:
  - paddle_width: 150
    bombs: 1
  - paddle_width: 90
    bombs: 12
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Lives != 5 || cfg.Grid.Cols != 8 || cfg.Grid.Rows != BrickRows {
		t.Errorf("overrides not applied: lives=%d grid=%+v", cfg.Lives, cfg.Grid)
	}
	if len(cfg.Stages) != 2 || cfg.Stages[1].Bombs != 12 {
		t.Errorf("stages = %+v", cfg.Stages)
	}
	if lo, hi := cfg.Blast(); lo != 2 || hi != 2 {
		t.Errorf("symmetric blast = [-%d,%d], want [-2,2]", lo, hi)
	}
}

// TestParseConfigErrors covers unknown keys and invalid values.
func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"Unknown key", "livez: 3\n", false},
		{"Bad type", "lives: many\n", false},
		{"Zero lives", "lives: 0\n", true},
		{"Empty grid", "grid:\n  cols: 0\n", true},
		{"Wide angle", "paddle:\n  max_angle: 95\n", true},
		{"No stages", "stages: []\n", true},
		{"Negative bombs", "stages:\n  - paddle_width: 100\n    bombs: -1\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatalf("expected error")
			}
			if errors.Is(err, ErrInvalidConfig) != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v for %v", !tt.invalid, err)
			}
		})
	}
}

// TestLoadConfig reads a file and handles the empty path and a missing file.
func TestLoadConfig(t *testing.T) {
	if _, err := LoadConfig(""); err != nil {
		t.Errorf("empty path: %v", err)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want not-exist", err)
	}
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("seed: 1234\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", cfg.Seed)
	}
}

// TestGetStageConfig verifies stage lookup clamps to the table.
func TestGetStageConfig(t *testing.T) {
	stages := DefaultStages()
	if got := GetStageConfig(stages, 0); got != stages[0] {
		t.Errorf("stage 0 = %+v", got)
	}
	if got := GetStageConfig(stages, 9); got != stages[2] {
		t.Errorf("stage 9 = %+v", got)
	}
	if got := GetStageConfig(nil, 2); got != stages[1] {
		t.Errorf("nil table stage 2 = %+v", got)
	}
}
