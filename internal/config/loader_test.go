package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so only
// the embedded defaults and explicit paths are visible.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	t2048, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048() failed: %v", err)
	}
	if t2048 != DefaultT2048Config() {
		t.Errorf("embedded t2048 = %+v, expected %+v", t2048, DefaultT2048Config())
	}

	tetris, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if tetris != DefaultTetrisConfig() {
		t.Errorf("embedded tetris = %+v, expected %+v", tetris, DefaultTetrisConfig())
	}

	snake, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if snake != DefaultSnakeConfig() {
		t.Errorf("embedded snake = %+v, expected %+v", snake, DefaultSnakeConfig())
	}
}

func TestCustomPathOverridesFields(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("tick_ms: 90\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.TickMS != 90 {
		t.Errorf("TickMS = %d, expected 90", cfg.TickMS)
	}
	// Fields absent from the file keep their defaults
	if cfg.FoodScore != DefaultSnakeConfig().FoodScore {
		t.Errorf("FoodScore = %d, expected default %d", cfg.FoodScore, DefaultSnakeConfig().FoodScore)
	}
}

func TestCustomPathMissing(t *testing.T) {
	isolate(t)

	cfg, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("failed load should return defaults, got %+v", cfg)
	}
}

func TestCustomPathInvalidValues(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte("target: 1000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadT2048(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLocalConfigsDirectory(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "tetris.yaml"), []byte("gravity_ms: 250\nline_score: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.GravityMS != 250 || cfg.LineScore != 40 {
		t.Errorf("local config not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  validator
		ok   bool
	}{
		{"t2048 default", DefaultT2048Config(), true},
		{"t2048 zero cooldown", T2048Config{Target: 2048, MoveCooldownMS: 0}, true},
		{"t2048 target not power of two", T2048Config{Target: 2000}, false},
		{"t2048 probability above one", T2048Config{Target: 2048, SpawnFourProbability: 1.5}, false},
		{"tetris default", DefaultTetrisConfig(), true},
		{"tetris zero gravity", TetrisConfig{GravityMS: 0, LineScore: 100}, false},
		{"snake default", DefaultSnakeConfig(), true},
		{"snake negative score", SnakeConfig{TickMS: 100, FoodScore: -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}
