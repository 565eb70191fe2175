package chase

import (
	"math"
	"math/rand"
)

// steering carries everything a ghost needs to pick its next move.
// It is rebuilt every ghost tick from the engine state.
type steering struct {
	board        Board
	player       Position
	playerDir    Direction
	randomChance float64
	lookahead    int
	patrolRadius int
	rng          *rand.Rand
}

// steer advances one ghost by a single step.
//
// A ghost only re-decides when its way forward is blocked or it stands on an
// intersection. Independently of that, a non-scared ghost may snap onto the
// direct-chase direction on any tick, even mid-corridor.
func (s *steering) steer(g Ghost) Ghost {
	next := NextPosition(g.Position, g.Direction)

	if !s.board.IsValidMove(next) || s.board.isIntersection(g.Position) {
		switch {
		case g.Scared:
			g.Direction = s.flee(g.Position)
		case s.rng.Float64() < s.randomChance:
			g.Direction = s.explore(g.Position)
		default:
			g.Direction = s.smart(g)
		}
		next = NextPosition(g.Position, g.Direction)
	}

	if !g.Scared && s.rng.Float64() < s.randomChance {
		chase := s.best(g.Position, func(p Position) int { return distance(p, s.player) })
		if step := NextPosition(g.Position, chase); s.board.IsValidMove(step) {
			g.Direction = chase
			next = step
		}
	}

	g.Position = Wrap(next)
	return g
}

// smart picks the ghost's heuristic direction.
func (s *steering) smart(g Ghost) Direction {
	return s.best(g.Position, func(p Position) int { return s.score(g, p) })
}

// score rates a candidate cell for a ghost. Lower is better.
func (s *steering) score(g Ghost, next Position) int {
	switch g.ID {
	case GhostAmbusher:
		return distance(next, s.player.Add(s.playerDir.Scale(s.lookahead)))
	case GhostFlanker:
		mirror := Position{
			X: s.player.X + (s.player.X - g.Position.X),
			Y: s.player.Y + (s.player.Y - g.Position.Y),
		}
		return distance(next, mirror)
	case GhostPatroller:
		d := distance(next, s.player)
		if d < s.patrolRadius {
			return -d
		}
		return d
	default:
		return distance(next, s.player)
	}
}

// best returns the open exit with the lowest score, or Idle if boxed in.
func (s *steering) best(from Position, score func(Position) int) Direction {
	exits := s.board.validExits(from)
	if len(exits) == 0 {
		return Idle
	}
	dir, low := exits[0], math.MaxInt
	for _, d := range exits {
		if v := score(NextPosition(from, d)); v < low {
			dir, low = d, v
		}
	}
	return dir
}

// flee returns the open exit that ends farthest from the player.
func (s *steering) flee(from Position) Direction {
	return s.best(from, func(p Position) int { return -distance(p, s.player) })
}

// explore picks a uniformly random open exit.
func (s *steering) explore(from Position) Direction {
	exits := s.board.validExits(from)
	if len(exits) == 0 {
		return Idle
	}
	return exits[s.rng.Intn(len(exits))]
}
