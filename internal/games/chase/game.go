package chase

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

// Package-level settings applied on the next Reset, set from the CLI flags.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML config path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// GameID returns the registry ID for a difficulty preset.
func GameID(preset config.DifficultyPreset) string {
	if preset == config.DifficultyNormal || preset == "" {
		return "chase"
	}
	return "chase_" + string(preset)
}

func init() {
	titles := map[config.DifficultyPreset]string{
		config.DifficultyEasy:   "Chase (Easy)",
		config.DifficultyNormal: "Chase",
		config.DifficultyHard:   "Chase (Hard)",
		config.DifficultyFixed:  "Chase (Fixed)",
	}
	blurbs := map[config.DifficultyPreset]string{
		config.DifficultyEasy:   "Slow ghosts, gentle start",
		config.DifficultyNormal: "Classic cadence, ghosts sharpen each level",
		config.DifficultyHard:   "Fast ghosts, quicker player",
		config.DifficultyFixed:  "Ghosts never get smarter",
	}
	for _, p := range config.Presets() {
		registry.Register(registry.GameInfo{
			ID:          GameID(p),
			Title:       titles[p],
			Description: blurbs[p],
		}, func() registry.Game {
			return New(p)
		})
	}
}

// Game adapts the engine to the frame-driven platform loop.
//
// Each frame advances a logical clock by one frame length. Player and ghost
// ticks fire whenever their interval has accumulated, and the level
// transition runs on the same clock, so a run is reproducible from its seed
// and inputs alone.
type Game struct {
	preset config.DifficultyPreset
	cfg    config.ChaseConfig
	engine *Engine
	clock  *core.ManualClock
	rng    *rand.Rand

	frame     time.Duration
	playerAcc time.Duration
	ghostAcc  time.Duration
	tick      uint64

	runtime core.RuntimeConfig
}

// New creates a game for a difficulty preset.
func New(preset config.DifficultyPreset) *Game {
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return &Game{preset: preset}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	if info, ok := registry.Lookup(g.ID()); ok {
		return info.Title
	}
	return "Chase"
}

// Preset returns the difficulty preset the game was created with.
func (g *Game) Preset() config.DifficultyPreset {
	return g.preset
}

// Reset starts a fresh game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = loadConfig(g.preset)
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rc

	if g.engine != nil {
		g.engine.Stop()
	}
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.clock = core.NewManualClock()
	g.engine = NewEngine(Options{
		Config: g.cfg,
		Clock:  g.clock,
		Rand:   g.rng,
		Logger: logger,
	})

	g.frame = time.Second / time.Duration(rc.TickRate)
	g.playerAcc = 0
	g.ghostAcc = 0
	g.tick = 0
}

// loadConfig reads the YAML config for a preset. A broken file is logged
// and the built-in defaults are used instead.
func loadConfig(preset config.DifficultyPreset) config.ChaseConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultChaseConfig()
	}
	config.ApplyPreset(&cfg, preset)
	return cfg
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	st := g.engine.State()

	if input.Has(core.ActionRestart) && st.GameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.engine.TogglePause()
	}
	if d, ok := DirectionFromAction(input.Movement()); ok {
		g.engine.SetDirection(d)
	}

	g.clock.Advance(g.frame)

	playerEvery := g.cfg.Timing.PlayerTick()
	ghostEvery := g.cfg.Timing.GhostTick()

	g.playerAcc += g.frame
	for g.playerAcc >= playerEvery {
		g.playerAcc -= playerEvery
		g.engine.TickPlayer()
	}
	g.ghostAcc += g.frame
	for g.ghostAcc >= ghostEvery {
		g.ghostAcc -= ghostEvery
		g.engine.TickGhosts()
	}

	return core.StepResult{State: g.State()}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	st := g.engine.State()
	return core.GameState{
		Score:    st.Score,
		Level:    st.Level,
		GameOver: st.GameOver,
		Paused:   st.Paused,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}
