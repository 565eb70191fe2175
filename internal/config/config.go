// Package config provides YAML-based game configuration loading and
// difficulty scaling for the chase game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ChaseConfig contains all tunable parameters of the chase game.
type ChaseConfig struct {
	Rules      RulesConfig      `yaml:"rules"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MaxLives is the most lives a game may start with.
const MaxLives = 3

// RulesConfig defines scoring and life parameters.
type RulesConfig struct {
	Lives             int `yaml:"lives"`
	PelletPoints      int `yaml:"pellet_points"`
	PowerPelletPoints int `yaml:"power_pellet_points"`
	GhostPoints       int `yaml:"ghost_points"`

	// Scared duration in ghost ticks: max(ScaredMin, ScaredBase - level*ScaredPerLevel).
	ScaredBase     int `yaml:"scared_base"`
	ScaredPerLevel int `yaml:"scared_per_level"`
	ScaredMin      int `yaml:"scared_min"`
}

// TimingConfig defines driver cadences and the level transition delays.
// Values are milliseconds in YAML.
type TimingConfig struct {
	PlayerTickMs       int `yaml:"player_tick_ms"`
	GhostTickMs        int `yaml:"ghost_tick_ms"`
	LevelClearDelayMs  int `yaml:"level_clear_delay_ms"`
	BoardReloadDelayMs int `yaml:"board_reload_delay_ms"`
}

// DifficultyConfig defines how ghost behaviour scales with the level.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	StepPerLevel float64 `yaml:"step_per_level"` // difficulty gained per level above 1
	Max          float64 `yaml:"max"`            // difficulty ceiling

	// randomChance = max(MinRandom, BaseRandom - (difficulty-1)*RandomSlope)
	BaseRandom  float64 `yaml:"base_random"`
	RandomSlope float64 `yaml:"random_slope"`
	MinRandom   float64 `yaml:"min_random"`

	AmbushLookahead int `yaml:"ambush_lookahead"` // cells ahead of the player for the ambusher
	PatrolRadius    int `yaml:"patrol_radius"`    // patrol ghost backs off inside this distance
}

// PlayerTick returns the player tick interval.
func (t TimingConfig) PlayerTick() time.Duration {
	return time.Duration(t.PlayerTickMs) * time.Millisecond
}

// GhostTick returns the ghost tick interval.
func (t TimingConfig) GhostTick() time.Duration {
	return time.Duration(t.GhostTickMs) * time.Millisecond
}

// LevelClearDelay returns the pause between clearing a level and the level increment.
func (t TimingConfig) LevelClearDelay() time.Duration {
	return time.Duration(t.LevelClearDelayMs) * time.Millisecond
}

// BoardReloadDelay returns the pause between the level increment and the board reload.
func (t TimingConfig) BoardReloadDelay() time.Duration {
	return time.Duration(t.BoardReloadDelayMs) * time.Millisecond
}

// Validate reports every out-of-range value in the config.
func (c ChaseConfig) Validate() error {
	var errs []error

	if c.Rules.Lives < 1 || c.Rules.Lives > MaxLives {
		errs = append(errs, fmt.Errorf("rules.lives must be between 1 and %d, got %d", MaxLives, c.Rules.Lives))
	}
	if c.Rules.PelletPoints < 0 || c.Rules.PowerPelletPoints < 0 || c.Rules.GhostPoints < 0 {
		errs = append(errs, errors.New("rules: point values must not be negative"))
	}
	if c.Rules.ScaredMin < 0 {
		errs = append(errs, fmt.Errorf("rules.scared_min must not be negative, got %d", c.Rules.ScaredMin))
	}
	if c.Timing.PlayerTickMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.player_tick_ms must be positive, got %d", c.Timing.PlayerTickMs))
	}
	if c.Timing.GhostTickMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.ghost_tick_ms must be positive, got %d", c.Timing.GhostTickMs))
	}
	if c.Timing.LevelClearDelayMs < 0 || c.Timing.BoardReloadDelayMs < 0 {
		errs = append(errs, errors.New("timing: transition delays must not be negative"))
	}
	if c.Difficulty.MinRandom < 0 || c.Difficulty.BaseRandom > 1 {
		errs = append(errs, errors.New("difficulty: random chance must stay within [0, 1]"))
	}
	if c.Difficulty.Max < 1 {
		errs = append(errs, fmt.Errorf("difficulty.max must be at least 1, got %g", c.Difficulty.Max))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid chase config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}
