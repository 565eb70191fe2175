package chase

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

func newTestGame(t *testing.T, preset config.DifficultyPreset, seed int64) *Game {
	t.Helper()
	g := New(preset)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestPresetsRegistered(t *testing.T) {
	for _, p := range config.Presets() {
		id := GameID(p)
		if !registry.Exists(id) {
			t.Errorf("preset %s not registered as %q", p, id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
	if GameID(config.DifficultyNormal) != "chase" {
		t.Errorf("normal preset ID = %q, expected chase", GameID(config.DifficultyNormal))
	}
}

func TestGamePlayerCadence(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)

	// 150ms player tick at 60 FPS: nine frames are not enough, the tenth is
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)
	input.Clear()
	for range 8 {
		g.Step(input)
	}
	if g.Engine().Player() != PlayerSpawn {
		t.Fatalf("player moved after 9 frames: %v", g.Engine().Player())
	}

	g.Step(input)
	if g.Engine().Player() != (Position{X: 8, Y: 15}) {
		t.Errorf("player at %v after 10 frames, expected (8,15)", g.Engine().Player())
	}
	if g.State().Score != 10 {
		t.Errorf("score = %d, expected 10", g.State().Score)
	}
}

func TestGamePauseAndRestart(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.State().Paused {
		t.Fatal("pause action did not pause")
	}

	// Restart is ignored while the game is still running
	input.Clear()
	input.Set(core.ActionRestart)
	g.Step(input)
	if !g.State().Paused {
		t.Error("restart reset a running game")
	}

	g.Engine().state.GameOver = true
	g.Step(input)
	st := g.State()
	if st.GameOver || st.Paused || st.Level != 1 {
		t.Errorf("state after restart = %+v", st)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, config.DifficultyHard, 777)
		input := core.NewInputFrame()
		moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
		for i := range 1200 {
			input.Clear()
			if i%45 == 0 {
				input.Set(moves[(i/45)%len(moves)])
			}
			g.Step(input)
		}
		return g.Engine().Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Score: 0", "Lives: 3", "Level: 1", "Maze: Classic", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	small := core.NewScreen(30, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small screen did not show the resize hint")
	}

	g.Engine().TogglePause()
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("paused overlay missing")
	}
}
