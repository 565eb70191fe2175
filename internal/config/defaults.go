package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the built-in chase configuration.
// It mirrors defaults/chase.yaml and backs the loader when the embed is unreadable.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Rules: RulesConfig{
			Lives:             3,
			PelletPoints:      10,
			PowerPelletPoints: 50,
			GhostPoints:       200,
			ScaredBase:        100,
			ScaredPerLevel:    5,
			ScaredMin:         60,
		},
		Timing: TimingConfig{
			PlayerTickMs:       150,
			GhostTickMs:        200,
			LevelClearDelayMs:  2000,
			BoardReloadDelayMs: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			StepPerLevel:    0.15,
			Max:             2.5,
			BaseRandom:      0.2,
			RandomSlope:     0.1,
			MinRandom:       0.05,
			AmbushLookahead: 4,
			PatrolRadius:    8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultChaseYAML
}
