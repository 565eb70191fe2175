package chase

import (
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
)

// Options configures a new Engine. Zero values fall back to defaults.
type Options struct {
	Config config.ChaseConfig // zero value means config.DefaultChaseConfig()
	Clock  core.Clock         // schedules level transitions; see NewEngine for the default
	Seed   int64              // seeds the ghost RNG when Rand is nil; 0 uses the time
	Rand   *rand.Rand
	Logger *log.Logger // defaults to a discarding logger
}

// Engine owns the board, the agents and the game state.
//
// Engine is not safe for concurrent use: exactly one goroutine may call its
// methods. The topics returned by StateTopic, PlayerTopic and GhostsTopic
// may be read from anywhere.
type Engine struct {
	cfg    config.ChaseConfig
	clock  core.Clock
	queue  *core.QueueClock // set when the engine owns its clock
	rng    *rand.Rand
	logger *log.Logger

	board            Board
	pelletsRemaining int
	state            GameState
	player           Position
	playerDir        Direction
	desiredDir       Direction
	ghosts           []Ghost
	scaredTimer      int

	transition transition
	stopped    bool

	stateTopic  *Topic[GameState]
	playerTopic *Topic[Position]
	ghostsTopic *Topic[[]Ghost]
}

// NewEngine creates an engine on a fresh level 1.
//
// Without opts.Clock the engine times transitions on the wall clock through
// a core.QueueClock: steps that come due run at the start of the next
// SetDirection, TickPlayer, TickGhosts or TogglePause call, on the
// caller's goroutine.
func NewEngine(opts Options) *Engine {
	cfg := opts.Config
	if cfg == (config.ChaseConfig{}) {
		cfg = config.DefaultChaseConfig()
	}
	clock := opts.Clock
	var queue *core.QueueClock
	if clock == nil {
		queue = core.NewQueueClock()
		clock = queue
	}
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		cfg:    cfg,
		clock:  clock,
		queue:  queue,
		rng:    rng,
		logger: logger,
	}
	e.init()
	e.stateTopic = newTopic(e.state)
	e.playerTopic = newTopic(e.player)
	e.ghostsTopic = newTopic(slices.Clone(e.ghosts))
	return e
}

// init puts the engine on level 1 with a full board and agents at spawn.
func (e *Engine) init() {
	e.state = GameState{
		Lives: e.cfg.Rules.Lives,
		Level: 1,
	}
	e.loadLevel(1)
	e.resetAgents()
}

// Config returns the rules the engine runs with.
func (e *Engine) Config() config.ChaseConfig {
	return e.cfg
}

// Board returns the live board. Callers must not modify it; it is replaced
// wholesale when a new level loads.
func (e *Engine) Board() Board {
	return e.board
}

// PelletsRemaining returns how many pellets and power pellets are left.
func (e *Engine) PelletsRemaining() int {
	return e.pelletsRemaining
}

// State returns the current game state.
func (e *Engine) State() GameState {
	return e.state
}

// Player returns the player's cell.
func (e *Engine) Player() Position {
	return e.player
}

// PlayerDirection returns the direction the player last moved in.
func (e *Engine) PlayerDirection() Direction {
	return e.playerDir
}

// Ghosts returns a copy of the ghosts.
func (e *Engine) Ghosts() []Ghost {
	return slices.Clone(e.ghosts)
}

// ScaredTimer returns the ghost ticks left before ghosts stop being scared.
func (e *Engine) ScaredTimer() int {
	return e.scaredTimer
}

// StateTopic publishes every GameState change.
func (e *Engine) StateTopic() *Topic[GameState] { return e.stateTopic }

// PlayerTopic publishes every player move.
func (e *Engine) PlayerTopic() *Topic[Position] { return e.playerTopic }

// GhostsTopic publishes the ghost list after every change.
func (e *Engine) GhostsTopic() *Topic[[]Ghost] { return e.ghostsTopic }

// Phase reports where the engine is in its lifecycle.
func (e *Engine) Phase() Phase {
	switch {
	case e.state.GameOver:
		return PhaseGameOver
	case e.transition.step != stepIdle:
		return PhaseTransitioning
	case e.state.Paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// SetDirection records the direction to try on the next player tick.
// Anything other than a unit cardinal vector or Idle is ignored.
func (e *Engine) SetDirection(d Direction) {
	e.runDue()
	if e.stopped || (d != Idle && !d.IsCardinal()) {
		return
	}
	e.desiredDir = d
}

// TickPlayer moves the player one step.
func (e *Engine) TickPlayer() {
	e.runDue()
	if e.frozen() {
		return
	}

	next, dir, moved := e.board.resolvePlayerStep(e.player, e.playerDir, e.desiredDir)
	if !moved {
		return
	}
	e.playerDir = dir

	e.eatAt(next)
	e.player = next
	e.playerTopic.publish(e.player)

	e.checkGhostCollisions()
}

// TickGhosts moves every ghost one step and counts down the scared timer.
func (e *Engine) TickGhosts() {
	e.runDue()
	if e.frozen() {
		return
	}

	s := steering{
		board:        e.board,
		player:       e.player,
		playerDir:    e.playerDir,
		randomChance: e.cfg.Difficulty.RandomChance(e.state.Level),
		lookahead:    e.cfg.Difficulty.AmbushLookahead,
		patrolRadius: e.cfg.Difficulty.PatrolRadius,
		rng:          e.rng,
	}
	for i := range e.ghosts {
		e.ghosts[i] = s.steer(e.ghosts[i])
	}
	e.publishGhosts()

	e.checkGhostCollisions()
	e.countdownScared()
}

// TogglePause flips the pause flag. It does nothing once the game is over
// or while the level-clear freeze holds. Once the next level is published
// a pause is accepted and carries over the board reload.
func (e *Engine) TogglePause() {
	e.runDue()
	if e.stopped || e.state.GameOver || e.transition.step == stepCleared {
		return
	}
	e.state.Paused = !e.state.Paused
	e.publishState()
}

// Reset starts a new game on level 1 and cancels any pending transition.
func (e *Engine) Reset() {
	if e.stopped {
		return
	}
	e.cancelTransition()
	e.init()
	e.logger.Debug("game reset")
	e.publishState()
	e.publishAgents()
}

// Stop cancels pending transition steps. Every later call is a no-op.
func (e *Engine) Stop() {
	if e.stopped {
		return
	}
	e.cancelTransition()
	e.stopped = true
}

// runDue runs the transition steps the engine's own clock has queued.
func (e *Engine) runDue() {
	if e.queue != nil {
		e.queue.RunDue()
	}
}

// frozen reports whether movement and collisions are suspended.
func (e *Engine) frozen() bool {
	return e.stopped || e.state.GameOver || e.state.Paused || e.transition.step != stepIdle
}

// loadLevel replaces the board with a fresh copy of the level's maze.
func (e *Engine) loadLevel(level int) {
	e.board = LoadBoard(level)
	e.pelletsRemaining = e.board.CountPellets()
}

// resetAgents puts the player and every ghost back on their spawn cells.
// Freshly spawned ghosts are never scared.
func (e *Engine) resetAgents() {
	e.player = PlayerSpawn
	e.playerDir = Idle
	e.desiredDir = Idle
	e.ghosts = spawnGhosts(e.state.Level)
	e.scaredTimer = 0
}

func (e *Engine) publishState() {
	e.stateTopic.publish(e.state)
}

func (e *Engine) publishGhosts() {
	e.ghostsTopic.publish(slices.Clone(e.ghosts))
}

func (e *Engine) publishAgents() {
	e.playerTopic.publish(e.player)
	e.publishGhosts()
}
