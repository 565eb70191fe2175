package chase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-chase/internal/config"
)

func TestRunnerTeardownStopsMutation(t *testing.T) {
	cfg := config.DefaultChaseConfig()
	cfg.Timing.PlayerTickMs = 5
	cfg.Timing.GhostTickMs = 10_000
	cfg.Timing.LevelClearDelayMs = 500

	r := NewRunner(Options{Config: cfg, Seed: 3})
	leaveOnlyPellet(r.engine, Position{X: 8, Y: 15})

	cleared := make(chan struct{})
	r.StateTopic().Subscribe(func(s GameState) {
		if s.LevelComplete {
			select {
			case <-cleared:
			default:
				close(cleared)
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx) }()

	if !r.SetDirection(ctx, Left) {
		t.Fatal("SetDirection was not queued")
	}

	select {
	case <-cleared:
	case <-time.After(2 * time.Second):
		t.Fatal("level was never cleared")
	}
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, expected context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	e := r.Engine()
	snap := e.Snapshot()
	time.Sleep(700 * time.Millisecond)

	if e.Snapshot() != snap {
		t.Error("engine mutated after Run returned")
	}
	if e.State().Level != 1 {
		t.Error("pending level advance fired after teardown")
	}
	if r.SetDirection(context.Background(), Right) {
		t.Error("commands accepted after teardown")
	}
}

func TestRunnerStopsOnGameOver(t *testing.T) {
	cfg := config.DefaultChaseConfig()
	cfg.Timing.PlayerTickMs = 5
	cfg.Timing.GhostTickMs = 10_000

	r := NewRunner(Options{Config: cfg, Seed: 3})
	r.StopOnGameOver = true
	r.engine.state.Lives = 1
	r.engine.ghosts[0].Position = Position{X: 8, Y: 15}
	r.BeforePlayerTick = func(e *Engine) { e.SetDirection(Left) }

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run() = %v, expected nil on game over", err)
	}
	if !r.Engine().State().GameOver {
		t.Error("Run returned before the game ended")
	}
}
