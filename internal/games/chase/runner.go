package chase

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Runner drives an Engine on the wall clock from a single goroutine.
//
// Player ticks, ghost ticks, queued commands and scheduled transition steps
// are all executed by Run, one at a time, so the engine keeps its single
// writer. Run may be called once.
type Runner struct {
	engine      *Engine
	playerEvery time.Duration
	ghostEvery  time.Duration
	logger      *log.Logger

	commands chan func(*Engine)
	dispatch chan func()
	done     chan struct{}

	// BeforePlayerTick, if set, runs on the loop goroutine before each
	// player tick. The autopilot steers through it.
	BeforePlayerTick func(*Engine)

	// StopOnGameOver makes Run return once the game is lost.
	StopOnGameOver bool
}

// NewRunner creates a runner and its engine. opts.Clock is replaced by a
// clock that feeds the runner's loop.
func NewRunner(opts Options) *Runner {
	r := &Runner{
		commands: make(chan func(*Engine), 16),
		dispatch: make(chan func(), 4),
		done:     make(chan struct{}),
	}
	opts.Clock = loopClock{dispatch: r.dispatch, done: r.done}
	r.engine = NewEngine(opts)
	r.logger = r.engine.logger
	r.playerEvery = r.engine.cfg.Timing.PlayerTick()
	r.ghostEvery = r.engine.cfg.Timing.GhostTick()
	return r
}

// StateTopic returns the engine's state topic. Topics are safe to observe
// from any goroutine; the engine itself is not.
func (r *Runner) StateTopic() *Topic[GameState] { return r.engine.StateTopic() }
func (r *Runner) PlayerTopic() *Topic[Position] { return r.engine.PlayerTopic() }
func (r *Runner) GhostsTopic() *Topic[[]Ghost] { return r.engine.GhostsTopic() }

// Engine returns the driven engine. Only use it after Run has returned.
func (r *Runner) Engine() *Engine {
	return r.engine
}

// Do queues fn to run on the loop goroutine. It blocks until queued or
// until ctx or the runner is done.
func (r *Runner) Do(ctx context.Context, fn func(*Engine)) bool {
	select {
	case <-r.done:
		return false
	default:
	}
	select {
	case r.commands <- fn:
		return true
	case <-r.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// SetDirection queues a direction change.
func (r *Runner) SetDirection(ctx context.Context, d Direction) bool {
	return r.Do(ctx, func(e *Engine) { e.SetDirection(d) })
}

// TogglePause queues a pause toggle.
func (r *Runner) TogglePause(ctx context.Context) bool {
	return r.Do(ctx, (*Engine).TogglePause)
}

// Reset queues a game reset.
func (r *Runner) Reset(ctx context.Context) bool {
	return r.Do(ctx, (*Engine).Reset)
}

// Run ticks the engine until ctx is done, or until the game is lost when
// StopOnGameOver is set. On return both tickers are stopped and the engine
// is stopped, so nothing mutates it afterwards.
func (r *Runner) Run(ctx context.Context) error {
	playerTicker := time.NewTicker(r.playerEvery)
	ghostTicker := time.NewTicker(r.ghostEvery)
	defer func() {
		playerTicker.Stop()
		ghostTicker.Stop()
		close(r.done)
		r.engine.Stop()
		r.logger.Debug("runner stopped", "level", r.engine.state.Level, "score", r.engine.state.Score)
	}()

	r.logger.Debug("runner started", "player_tick", r.playerEvery, "ghost_tick", r.ghostEvery)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case fn := <-r.commands:
			fn(r.engine)

		case step := <-r.dispatch:
			step()

		case <-playerTicker.C:
			if r.BeforePlayerTick != nil {
				r.BeforePlayerTick(r.engine)
			}
			r.engine.TickPlayer()

		case <-ghostTicker.C:
			r.engine.TickGhosts()
		}

		if r.StopOnGameOver && r.engine.state.GameOver {
			return nil
		}
	}
}

// loopClock schedules callbacks on the wall clock but runs them on the
// runner's loop goroutine.
type loopClock struct {
	wall     core.RealClock
	dispatch chan<- func()
	done     <-chan struct{}
}

func (c loopClock) AfterFunc(d time.Duration, f func()) core.Timer {
	return c.wall.AfterFunc(d, func() {
		select {
		case c.dispatch <- f:
		case <-c.done:
		}
	})
}
