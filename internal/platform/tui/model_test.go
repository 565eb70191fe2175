package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

// scriptedGame ends after a fixed number of frames and restarts on ActionRestart.
type scriptedGame struct {
	frames   int
	endAfter int
	resets   int
	state    core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames = 0
	g.state = core.GameState{Level: 1}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{})
		}
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	g.frames++
	g.state.Score += 10
	if g.frames >= g.endAfter {
		g.state.GameOver = true
		g.state.Level = 2
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState  { return g.state }

type fakeRecorder struct {
	runs []storage.Run
	err  error
}

func (r *fakeRecorder) SaveRun(run storage.Run) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.runs = append(r.runs, run)
	return int64(len(r.runs)), nil
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func newScriptedModel(g *scriptedGame, rec RunRecorder) Model {
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}).WithRecorder(rec)
	m.Init()
	return m
}

func TestModelRecordsRunOncePerGameOver(t *testing.T) {
	g := &scriptedGame{endAfter: 3}
	rec := &fakeRecorder{}
	m := newScriptedModel(g, rec)

	for range 6 {
		m = step(t, m, TickMsg{})
	}
	if len(rec.runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(rec.runs))
	}
	if got := rec.runs[0]; got.GameID != "scripted" || got.Score != 30 || got.Level != 2 {
		t.Errorf("saved run = %+v", got)
	}

	// Restart then finish again
	m = step(t, m, runeKey('r'))
	for range 5 {
		m = step(t, m, TickMsg{})
	}
	if len(rec.runs) != 2 {
		t.Errorf("saved %d runs after second game, expected 2", len(rec.runs))
	}
}

func TestModelSaveFailureKeepsPlaying(t *testing.T) {
	g := &scriptedGame{endAfter: 1}
	m := newScriptedModel(g, &fakeRecorder{err: errors.New("disk full")})

	m = step(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("game should be over")
	}
	if m.IsQuitting() {
		t.Error("a failed save must not quit")
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m := newScriptedModel(g, nil)

	m = step(t, m, TickMsg{})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back accepted while the game is running")
	}

	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg{})
	m = step(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back ignored while paused")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m := newScriptedModel(g, nil)
	m = step(t, m, TickMsg{})

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := newScriptedModel(&scriptedGame{endAfter: 100}, nil)
	m = step(t, m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}
