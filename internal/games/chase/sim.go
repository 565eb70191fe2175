package chase

import (
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// SimOptions bounds a headless autopilot run.
type SimOptions struct {
	Options
	Duration time.Duration // logical time limit; 0 means ten minutes
	MaxLevel int           // stop on reaching this level; 0 means no limit
}

// Simulate plays a game with the Autopilot on a logical clock, as fast as
// the CPU allows. Player and ghost ticks fire at their configured cadence
// and level transitions run on the same clock, so the result depends only
// on the options. Any Clock in opts is replaced.
func Simulate(opts SimOptions) Snapshot {
	limit := opts.Duration
	if limit <= 0 {
		limit = 10 * time.Minute
	}

	clock := core.NewManualClock()
	opts.Clock = clock
	e := NewEngine(opts.Options)
	defer e.Stop()

	timing := e.Config().Timing
	playerEvery, ghostEvery := timing.PlayerTick(), timing.GhostTick()
	nextPlayer, nextGhost := playerEvery, ghostEvery
	pilot := Autopilot{}

	for {
		now := min(nextPlayer, nextGhost)
		if now > limit {
			break
		}
		clock.Advance(now - clock.Now())

		if nextPlayer == now {
			pilot.Steer(e)
			e.TickPlayer()
			nextPlayer += playerEvery
		}
		if nextGhost == now {
			e.TickGhosts()
			nextGhost += ghostEvery
		}

		st := e.State()
		if st.GameOver || (opts.MaxLevel > 0 && st.Level >= opts.MaxLevel) {
			break
		}
	}

	return e.Snapshot()
}
