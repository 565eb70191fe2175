package chase

import (
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// transitionStep is the position inside the level-clear sequence.
type transitionStep int

const (
	stepIdle     transitionStep = iota // no transition running
	stepCleared                        // frozen, waiting to bump the level
	stepAdvanced                       // level published, waiting to reload the board
)

// transition tracks the pending level-clear sequence.
// gen changes whenever a sequence starts or is cancelled, so a callback
// that was already in flight recognises itself as stale.
type transition struct {
	step  transitionStep
	timer core.Timer
	gen   uint64
}

// beginLevelClear freezes play and schedules the level advance.
//
// The sequence is strictly ordered:
//  1. now: Paused and LevelComplete are set and published
//  2. after LevelClearDelay: the level goes up and play is unpaused, published
//     before the board changes
//  3. after BoardReloadDelay: the new maze loads and agents respawn
func (e *Engine) beginLevelClear() {
	if e.transition.step != stepIdle {
		return
	}

	e.state.Paused = true
	e.state.LevelComplete = true
	e.transition.step = stepCleared
	e.transition.gen++
	e.logger.Debug("level cleared", "level", e.state.Level, "score", e.state.Score)
	e.publishState()

	e.schedule(e.cfg.Timing.LevelClearDelay(), e.advanceLevel)
}

// advanceLevel is step 2.
func (e *Engine) advanceLevel() {
	e.state.Level++
	e.state.GameOver = false
	e.state.Won = false
	e.state.LevelComplete = false
	e.state.Paused = false
	e.transition.step = stepAdvanced
	e.publishState()

	e.schedule(e.cfg.Timing.BoardReloadDelay(), e.reloadBoard)
}

// reloadBoard is step 3. Ghost colors follow the new level through spawn.
func (e *Engine) reloadBoard() {
	e.transition.step = stepIdle
	e.transition.timer = nil
	e.loadLevel(e.state.Level)
	e.resetAgents()
	e.logger.Debug("level loaded",
		"level", e.state.Level,
		"maze", TemplateFor(e.state.Level).Name,
		"palette", PaletteIndex(e.state.Level),
	)
	e.publishAgents()
}

// schedule runs step after d unless the sequence is cancelled first.
func (e *Engine) schedule(d time.Duration, step func()) {
	gen := e.transition.gen
	e.transition.timer = e.clock.AfterFunc(d, func() {
		if e.stopped || e.transition.gen != gen {
			return
		}
		step()
	})
}

// cancelTransition drops any pending step and leaves the engine idle.
func (e *Engine) cancelTransition() {
	if e.transition.timer != nil {
		e.transition.timer.Stop()
	}
	e.transition = transition{gen: e.transition.gen + 1}
}
