package chase

// Autopilot steers the player towards the nearest pellet, treating cells
// held by dangerous ghosts as walls. It is a breadth-first search over the
// wrapped board, good enough for headless runs, not an optimal player.
type Autopilot struct{}

// Steer sets the engine's desired direction for the next player tick.
func (Autopilot) Steer(e *Engine) {
	if d, ok := nextStepToPellet(e.board, e.player, e.ghosts); ok {
		e.SetDirection(d)
	}
}

// nextStepToPellet returns the first move of a shortest path from start to
// any pellet. ok is false when no pellet is reachable.
func nextStepToPellet(b Board, start Position, ghosts []Ghost) (Direction, bool) {
	blocked := make(map[Position]bool, len(ghosts)*5)
	for _, g := range ghosts {
		if g.Scared {
			continue
		}
		blocked[g.Position] = true
		for _, d := range cardinals {
			blocked[Wrap(NextPosition(g.Position, d))] = true
		}
	}

	type node struct {
		pos   Position
		first Direction
	}
	seen := map[Position]bool{start: true}
	queue := make([]node, 0, Cols*Rows)
	for _, d := range cardinals {
		next := NextPosition(start, d)
		if !b.IsValidMove(next) {
			continue
		}
		next = Wrap(next)
		if blocked[next] || seen[next] {
			continue
		}
		seen[next] = true
		queue = append(queue, node{pos: next, first: d})
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if b.At(n.pos).IsPellet() {
			return n.first, true
		}
		for _, d := range cardinals {
			next := NextPosition(n.pos, d)
			if !b.IsValidMove(next) {
				continue
			}
			next = Wrap(next)
			if blocked[next] || seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, node{pos: next, first: n.first})
		}
	}
	return Idle, false
}
