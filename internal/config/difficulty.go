package config

import "math"

// Level returns the ghost difficulty multiplier for a game level:
// 1 at level 1, growing by StepPerLevel per level and capped at Max.
// With scaling disabled it stays at 1.
func (d DifficultyConfig) Level(level int) float64 {
	if !d.Enabled || level <= 1 {
		return 1
	}
	return math.Min(1+float64(level-1)*d.StepPerLevel, d.Max)
}

// RandomChance returns the probability that a ghost explores instead of
// following its heuristic. It shrinks as difficulty grows, floored at MinRandom.
func (d DifficultyConfig) RandomChance(level int) float64 {
	return math.Max(d.MinRandom, d.BaseRandom-(d.Level(level)-1)*d.RandomSlope)
}

// ScaredTicks returns how many ghost ticks a power pellet keeps ghosts scared.
func (r RulesConfig) ScaredTicks(level int) int {
	return max(r.ScaredMin, r.ScaredBase-level*r.ScaredPerLevel)
}
