package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var cfg ChaseConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultChaseConfig() {
		t.Errorf("embedded defaults drifted from DefaultChaseConfig():\n got %+v\nwant %+v", cfg, DefaultChaseConfig())
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chase.yaml")
	data := "timing:\n  ghost_tick_ms: 120\nrules:\n  lives: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.GhostTick() != 120*time.Millisecond {
		t.Errorf("GhostTick() = %v, expected 120ms", cfg.Timing.GhostTick())
	}
	if cfg.Rules.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", cfg.Rules.Lives)
	}
	// Keys absent from the file keep their defaults
	if cfg.Timing.PlayerTick() != 150*time.Millisecond {
		t.Errorf("PlayerTick() = %v, expected default 150ms", cfg.Timing.PlayerTick())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  player_tick_ms: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "player_tick_ms") {
		t.Errorf("Load() should reject a zero tick, got %v", err)
	}
}

func TestDifficultyCurve(t *testing.T) {
	d := DefaultChaseConfig().Difficulty

	tests := []struct {
		level      int
		difficulty float64
		random     float64
	}{
		{1, 1.0, 0.2},
		{2, 1.15, 0.185},
		{5, 1.6, 0.14},
		{11, 2.5, 0.05},
		{50, 2.5, 0.05},
	}

	for _, tc := range tests {
		if got := d.Level(tc.level); math.Abs(got-tc.difficulty) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.level, got, tc.difficulty)
		}
		if got := d.RandomChance(tc.level); math.Abs(got-tc.random) > 1e-9 {
			t.Errorf("RandomChance(%d) = %v, expected %v", tc.level, got, tc.random)
		}
	}
}

func TestScaredTicks(t *testing.T) {
	r := DefaultChaseConfig().Rules

	tests := []struct{ level, want int }{
		{1, 95},
		{4, 80},
		{8, 60},
		{20, 60},
	}
	for _, tc := range tests {
		if got := r.ScaredTicks(tc.level); got != tc.want {
			t.Errorf("ScaredTicks(%d) = %d, expected %d", tc.level, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultChaseConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Timing.GhostTickMs >= DefaultChaseConfig().Timing.GhostTickMs {
		t.Error("hard preset should speed up ghosts")
	}

	cfg = DefaultChaseConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Level(9) != 1 {
		t.Error("fixed preset should disable level scaling")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestValidateLives(t *testing.T) {
	tests := []struct {
		lives int
		ok    bool
	}{
		{0, false},
		{1, true},
		{MaxLives, true},
		{MaxLives + 1, false},
		{99, false},
	}
	for _, tc := range tests {
		cfg := DefaultChaseConfig()
		cfg.Rules.Lives = tc.lives
		err := cfg.Validate()
		if tc.ok && err != nil {
			t.Errorf("lives %d: Validate() = %v, expected nil", tc.lives, err)
		}
		if !tc.ok && (err == nil || !strings.Contains(err.Error(), "rules.lives")) {
			t.Errorf("lives %d: Validate() = %v, expected a rules.lives error", tc.lives, err)
		}
	}
}
