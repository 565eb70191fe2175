package chase

// NextPosition returns the cell one step from p along d, without wrapping.
func NextPosition(p Position, d Direction) Position {
	return p.Add(d)
}

// Wrap maps an off-board position to the opposite edge.
func Wrap(p Position) Position {
	switch {
	case p.X < 0:
		p.X = Cols - 1
	case p.X >= Cols:
		p.X = 0
	}
	switch {
	case p.Y < 0:
		p.Y = Rows - 1
	case p.Y >= Rows:
		p.Y = 0
	}
	return p
}

// IsValidMove reports whether an agent may step onto p.
// Off-board positions are always valid so agents can wrap around.
func (b Board) IsValidMove(p Position) bool {
	if !p.InBounds() {
		return true
	}
	return b[p.Y][p.X] != CellWall
}

// validExits returns the directions out of p that are not blocked,
// in Right, Left, Down, Up order.
func (b Board) validExits(p Position) []Direction {
	exits := make([]Direction, 0, len(cardinals))
	for _, d := range cardinals {
		if b.IsValidMove(NextPosition(p, d)) {
			exits = append(exits, d)
		}
	}
	return exits
}

// isIntersection reports whether p has more than two open exits.
func (b Board) isIntersection(p Position) bool {
	return len(b.validExits(p)) > 2
}

// resolvePlayerStep picks the player's move for one tick. The desired
// direction wins if it is open; otherwise the current direction continues.
// ok is false when neither is open and the player stays put.
func (b Board) resolvePlayerStep(at Position, current, desired Direction) (Position, Direction, bool) {
	if next := NextPosition(at, desired); b.IsValidMove(next) {
		return Wrap(next), desired, true
	}
	if next := NextPosition(at, current); b.IsValidMove(next) {
		return Wrap(next), current, true
	}
	return at, current, false
}
