package chase

// eatAt consumes whatever pellet sits on p and scores it.
// Clearing the last pellet starts the level transition.
func (e *Engine) eatAt(p Position) {
	rules := e.cfg.Rules

	switch e.board.At(p) {
	case CellPellet:
		e.state.Score += rules.PelletPoints
	case CellPowerPellet:
		e.state.Score += rules.PowerPelletPoints
		e.scaredTimer = rules.ScaredTicks(e.state.Level)
		e.setScared(true)
	default:
		return
	}

	e.board[p.Y][p.X] = CellEmpty
	e.pelletsRemaining--
	e.publishState()

	if e.pelletsRemaining == 0 {
		e.beginLevelClear()
	}
}

// checkGhostCollisions resolves every ghost sharing the player's cell.
// A scared ghost is eaten and sent to the den; any other contact costs a
// life and ends the pass, since the agents have been reset.
func (e *Engine) checkGhostCollisions() {
	if e.frozen() {
		return
	}

	for i := range e.ghosts {
		g := &e.ghosts[i]
		if g.Position != e.player {
			continue
		}
		if g.Scared {
			e.state.Score += e.cfg.Rules.GhostPoints
			g.Position = Den
			g.Scared = false
			e.logger.Debug("ghost eaten", "ghost", g.ID.Role(), "score", e.state.Score)
			e.publishState()
			e.publishGhosts()
			continue
		}
		e.loseLife()
		return
	}
}

// loseLife takes a life. The last one ends the game where it stands;
// otherwise every agent goes back to spawn and the board is kept.
func (e *Engine) loseLife() {
	e.state.Lives--
	if e.state.Lives <= 0 {
		e.state.Lives = 0
		e.state.GameOver = true
		e.logger.Debug("game over", "score", e.state.Score, "level", e.state.Level)
		e.publishState()
		return
	}

	e.logger.Debug("life lost", "lives", e.state.Lives)
	e.publishState()
	e.resetAgents()
	e.publishAgents()
}

// countdownScared runs once per ghost tick. Reaching zero clears scared on
// every ghost, including ones already eaten.
func (e *Engine) countdownScared() {
	if e.scaredTimer <= 0 {
		return
	}
	e.scaredTimer--
	if e.scaredTimer == 0 {
		e.setScared(false)
	}
}

func (e *Engine) setScared(scared bool) {
	for i := range e.ghosts {
		e.ghosts[i].Scared = scared
	}
	e.publishGhosts()
}
