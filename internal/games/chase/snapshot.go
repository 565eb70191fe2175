package chase

// Snapshot captures the complete engine state for determinism testing and replay.
type Snapshot struct {
	Level            int
	Score            int
	Lives            int
	Phase            Phase
	Player           Position
	PlayerDir        Direction
	Ghosts           [4]Ghost
	PelletsRemaining int
	ScaredTimer      int
}

// Snapshot returns the current engine snapshot. Two snapshots compare equal
// with == exactly when the simulations agree.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Level:            e.state.Level,
		Score:            e.state.Score,
		Lives:            e.state.Lives,
		Phase:            e.Phase(),
		Player:           e.player,
		PlayerDir:        e.playerDir,
		PelletsRemaining: e.pelletsRemaining,
		ScaredTimer:      e.scaredTimer,
	}
	copy(s.Ghosts[:], e.ghosts)
	return s
}
