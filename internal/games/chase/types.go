// Package chase implements a grid-based maze chase: a player collecting
// pellets while four ghosts hunt it, each with its own targeting heuristic.
//
// The Engine owns all simulation state and is driven from outside by two
// independent tick sources (player and ghosts). It never sleeps; timed steps
// such as the level transition are scheduled on an injected core.Clock.
package chase

import (
	"github.com/vovakirdan/tui-chase/internal/core"
)

// Board dimensions in cells.
const (
	Cols = 19
	Rows = 21
)

// Position is a grid coordinate. X grows to the right, Y grows downwards.
type Position struct {
	X, Y int
}

// Add returns p moved by d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Cols && p.Y >= 0 && p.Y < Rows
}

// Direction is a unit step along one axis, or the zero vector when idle.
type Direction struct {
	X, Y int
}

var (
	Idle  = Direction{}
	Right = Direction{X: 1}
	Left  = Direction{X: -1}
	Down  = Direction{Y: 1}
	Up    = Direction{Y: -1}
)

// cardinals is the evaluation order for ghost exits. Ties keep the earliest.
var cardinals = [...]Direction{Right, Left, Down, Up}

// IsCardinal reports whether d is one of the four unit directions.
func (d Direction) IsCardinal() bool {
	return d == Right || d == Left || d == Down || d == Up
}

// Scale multiplies the direction by n.
func (d Direction) Scale(n int) Direction {
	return Direction{X: d.X * n, Y: d.Y * n}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	case Idle:
		return "idle"
	default:
		return "invalid"
	}
}

// DirectionFromAction maps a movement action to a direction.
// Non-movement actions map to Idle and false.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	default:
		return Idle, false
	}
}

// distance is the Manhattan distance between two cells.
func distance(a, b Position) int {
	return core.Abs(a.X-b.X) + core.Abs(a.Y-b.Y)
}

// GhostID identifies a ghost and binds it to its targeting heuristic.
type GhostID int

const (
	GhostChaser    GhostID = iota + 1 // heads straight for the player
	GhostAmbusher                     // aims a few cells ahead of the player
	GhostFlanker                      // aims at the player mirrored through itself
	GhostPatroller                    // chases from afar, backs off up close
)

// Role returns a short name for the ghost's heuristic.
func (id GhostID) Role() string {
	switch id {
	case GhostChaser:
		return "chase"
	case GhostAmbusher:
		return "ambush"
	case GhostFlanker:
		return "flank"
	case GhostPatroller:
		return "patrol"
	default:
		return "unknown"
	}
}

// Ghost is one autonomous agent.
type Ghost struct {
	ID        GhostID
	Position  Position
	Direction Direction
	Color     core.Color
	Scared    bool
}

// GameState is the published score/lives/level record.
type GameState struct {
	Score         int
	Lives         int
	Level         int
	GameOver      bool
	Won           bool
	Paused        bool
	LevelComplete bool
}

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseTransitioning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Spawn layout shared by every maze.
var (
	PlayerSpawn = Position{X: 9, Y: 15}

	// Den is where an eaten ghost reappears. All ghosts share it.
	Den = Position{X: 9, Y: 9}

	ghostSpawns = [4]Ghost{
		{ID: GhostChaser, Position: Position{X: 9, Y: 7}, Direction: Right},
		{ID: GhostAmbusher, Position: Position{X: 8, Y: 9}, Direction: Down},
		{ID: GhostFlanker, Position: Position{X: 10, Y: 9}, Direction: Left},
		{ID: GhostPatroller, Position: Position{X: 9, Y: 9}, Direction: Up},
	}
)

// palettes holds the ghost colors, indexed by palette then ghost slot.
var palettes = [4][4]core.Color{
	{core.ColorRed, core.ColorPink, core.ColorCyan, core.ColorOrange},
	{core.ColorPurple, core.ColorMagenta, core.ColorLime, core.ColorYellow},
	{core.ColorDarkRed, core.ColorHotPink, core.ColorAqua, core.ColorGold},
	{core.ColorDarkViolet, core.ColorDeepPink, core.ColorSpringGreen, core.ColorDarkOrange},
}

// PaletteIndex returns which color set the ghosts wear on a level.
// It changes every two levels and stops at the last set.
func PaletteIndex(level int) int {
	if level < 1 {
		return 0
	}
	return min((level-1)/2, len(palettes)-1)
}

// spawnGhosts returns the four ghosts at their spawn cells, colored for level.
func spawnGhosts(level int) []Ghost {
	colors := palettes[PaletteIndex(level)]
	ghosts := make([]Ghost, len(ghostSpawns))
	for i, g := range ghostSpawns {
		g.Color = colors[i]
		ghosts[i] = g
	}
	return ghosts
}
