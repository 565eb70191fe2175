package chase

import (
	"testing"
)

func TestTemplatesAreWellFormed(t *testing.T) {
	for i, tmpl := range Templates() {
		b := LoadBoard(i + 1)
		if len(b) != Rows {
			t.Fatalf("%s: %d rows, expected %d", tmpl.Name, len(b), Rows)
		}
		for y, row := range b {
			if len(row) != Cols {
				t.Fatalf("%s: row %d has %d cells, expected %d", tmpl.Name, y, len(row), Cols)
			}
		}
		if b.CountPellets() == 0 {
			t.Errorf("%s: no pellets", tmpl.Name)
		}

		// Spawn cells must be open on every maze
		if b.At(PlayerSpawn) == CellWall {
			t.Errorf("%s: player spawn is a wall", tmpl.Name)
		}
		if b.At(Den) == CellWall {
			t.Errorf("%s: den is a wall", tmpl.Name)
		}
		// A ghost spawn may sit on a wall (Cross puts one in the gate at
		// (9,7)); ghosts only need a way out of it.
		for _, g := range ghostSpawns {
			if len(b.validExits(g.Position)) == 0 {
				t.Errorf("%s: ghost %d spawn at %v has no open exit", tmpl.Name, g.ID, g.Position)
			}
		}
	}
}

func TestLayoutIndexCycles(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 1},
		{4, 3},
		{5, 0},
		{9, 0},
		{0, 3},
		{-1, 2},
	}
	for _, tc := range tests {
		if got := LayoutIndex(tc.level); got != tc.want {
			t.Errorf("LayoutIndex(%d) = %d, expected %d", tc.level, got, tc.want)
		}
	}
}

func TestPaletteIndex(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 0},
		{3, 1},
		{4, 1},
		{5, 2},
		{6, 2},
		{7, 3},
		{50, 3},
	}
	for _, tc := range tests {
		if got := PaletteIndex(tc.level); got != tc.want {
			t.Errorf("PaletteIndex(%d) = %d, expected %d", tc.level, got, tc.want)
		}
	}
}

func TestLoadBoardIsDeepCopy(t *testing.T) {
	a := LoadBoard(1)
	a[1][1] = CellEmpty

	b := LoadBoard(1)
	if b[1][1] != CellPellet {
		t.Error("mutating a loaded board changed the template")
	}
}

func TestIsValidMoveOutsideBoard(t *testing.T) {
	b := LoadBoard(1)
	for x := -2; x <= Cols+1; x++ {
		for _, y := range []int{-2, -1, Rows, Rows + 1} {
			if !b.IsValidMove(Position{X: x, Y: y}) {
				t.Errorf("IsValidMove(%d,%d) = false, off-board moves must be valid", x, y)
			}
		}
	}
	for y := -2; y <= Rows+1; y++ {
		for _, x := range []int{-2, -1, Cols, Cols + 1} {
			if !b.IsValidMove(Position{X: x, Y: y}) {
				t.Errorf("IsValidMove(%d,%d) = false, off-board moves must be valid", x, y)
			}
		}
	}

	if b.IsValidMove(Position{X: 0, Y: 0}) {
		t.Error("wall cell reported as valid")
	}
	if !b.IsValidMove(Position{X: 1, Y: 1}) {
		t.Error("pellet cell reported as invalid")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in, want Position
	}{
		{Position{X: -1, Y: 9}, Position{X: Cols - 1, Y: 9}},
		{Position{X: Cols, Y: 9}, Position{X: 0, Y: 9}},
		{Position{X: 5, Y: -1}, Position{X: 5, Y: Rows - 1}},
		{Position{X: 5, Y: Rows}, Position{X: 5, Y: 0}},
		{Position{X: 7, Y: 7}, Position{X: 7, Y: 7}},
	}
	for _, tc := range tests {
		if got := Wrap(tc.in); got != tc.want {
			t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestCrossGateSpawnLeadsOut(t *testing.T) {
	b := LoadBoard(3)
	if name := TemplateFor(3).Name; name != "Cross" {
		t.Fatalf("level 3 uses %s, expected Cross", name)
	}
	spawn := ghostSpawns[0]
	next := NextPosition(spawn.Position, spawn.Direction)
	if !b.IsValidMove(next) {
		t.Errorf("ghost %d leaves its spawn %v into a wall at %v", spawn.ID, spawn.Position, next)
	}
}
