package chase

import (
	"fmt"
)

// Cell is the content of one board square. Agents are tracked separately.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellPellet
	CellPowerPellet
)

// Rune returns the template character for the cell.
func (c Cell) Rune() rune {
	switch c {
	case CellWall:
		return '#'
	case CellPellet:
		return '.'
	case CellPowerPellet:
		return 'o'
	default:
		return ' '
	}
}

// IsPellet reports whether the cell counts towards the pellets left.
func (c Cell) IsPellet() bool {
	return c == CellPellet || c == CellPowerPellet
}

// Template is an immutable maze layout.
//
// Layout legend:
//
//	# = wall
//	. = pellet
//	o = power pellet
//	  = empty (space)
type Template struct {
	Name   string
	Layout []string
}

// templates are cycled in order, one per level.
var templates = []Template{
	{
		Name: "Classic",
		Layout: []string{
			"###################",
			"#........#........#",
			"#o##.###.#.###.##o#",
			"#.................#",
			"#.##.#.#####.#.##.#",
			"#....#...#...#....#",
			"####.### # ###.####",
			"   #.#       #.#   ",
			"####.# ## ## #.####",
			"    .  #   #  .    ",
			"####.# ##### #.####",
			"   #.#       #.#   ",
			"####.# ##### #.####",
			"#........#........#",
			"#.##.###.#.###.##.#",
			"#o.#..... .....#.o#",
			"##.#.#.#####.#.#.##",
			"#....#...#...#....#",
			"#.######.#.######.#",
			"#.................#",
			"###################",
		},
	},
	{
		Name: "Open Center",
		Layout: []string{
			"###################",
			"#.................#",
			"#o###.###.###.###o#",
			"#.................#",
			"#.#.###.###.###.#.#",
			"#.................#",
			"#.##.###.#.###.##.#",
			"#........ ........#",
			"###.###.   .###.###",
			"   .   .   .   .   ",
			"###.###.###.###.###",
			"#........ ........#",
			"#.##.###.#.###.##.#",
			"#.................#",
			"#.#.###.###.###.#.#",
			"#o....... .......o#",
			"###.##.#####.##.###",
			"#........#........#",
			"#.######.#.######.#",
			"#.................#",
			"###################",
		},
	},
	{
		Name: "Cross",
		Layout: []string{
			"###################",
			"#.................#",
			"#o##.##.###.##.##o#",
			"#.##.##.###.##.##.#",
			"#.................#",
			"#.##.#.#####.#.##.#",
			"#....#...#...#....#",
			"####.### # ###.####",
			"   #.#       #.#   ",
			"........   ........",
			"   #.#       #.#   ",
			"####.#########.####",
			"#........#........#",
			"#.##.#.#####.#.##.#",
			"#....#.......#....#",
			"#o##.#.## ##.#.##o#",
			"#.##.#.#####.#.##.#",
			"#........#........#",
			"#.######.#.######.#",
			"#.................#",
			"###################",
		},
	},
	{
		Name: "Spiral",
		Layout: []string{
			"###################",
			"#.................#",
			"#o#######.#######o#",
			"#.......#.#.......#",
			"#######.#.#.#######",
			"#.......#.#.......#",
			"#.#######.#######.#",
			"#.#.............#.#",
			"#.#.####   ####.#.#",
			"#...#         #...#",
			"#.#.###########.#.#",
			"#.#...... ......#.#",
			"#.###############.#",
			"#.......#.#.......#",
			"#######.#.#.#######",
			"#o......#.#......o#",
			"#.#######.#######.#",
			"#.................#",
			"#.######.#.######.#",
			"#.................#",
			"###################",
		},
	},
}

// parsed holds the decoded templates, built once at init.
var parsed []Board

func init() {
	parsed = make([]Board, len(templates))
	for i, t := range templates {
		b, err := parseLayout(t.Layout)
		if err != nil {
			panic(fmt.Sprintf("chase: template %q: %v", t.Name, err))
		}
		parsed[i] = b
	}
}

// Templates returns the maze layouts in level order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// LayoutIndex returns which template a level uses. Levels cycle through the
// templates in order; any int is accepted.
func LayoutIndex(level int) int {
	n := len(templates)
	return ((level-1)%n + n) % n
}

// TemplateFor returns the template used on a level.
func TemplateFor(level int) Template {
	return templates[LayoutIndex(level)]
}

// LoadBoard returns a fresh, mutable board for a level.
func LoadBoard(level int) Board {
	return parsed[LayoutIndex(level)].Clone()
}

// Board is the mutable grid, indexed [y][x].
type Board [][]Cell

func parseLayout(rows []string) (Board, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("expected %d rows, got %d", Rows, len(rows))
	}
	b := make(Board, Rows)
	for y, row := range rows {
		if len(row) != Cols {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", y, Cols, len(row))
		}
		b[y] = make([]Cell, Cols)
		for x, ch := range row {
			switch ch {
			case '#':
				b[y][x] = CellWall
			case '.':
				b[y][x] = CellPellet
			case 'o':
				b[y][x] = CellPowerPellet
			case ' ':
				b[y][x] = CellEmpty
			default:
				return nil, fmt.Errorf("row %d: unknown cell %q", y, ch)
			}
		}
	}
	return b, nil
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y, row := range b {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// At returns the cell at p. Off-board positions read as empty.
func (b Board) At(p Position) Cell {
	if !p.InBounds() {
		return CellEmpty
	}
	return b[p.Y][p.X]
}

// CountPellets counts pellets and power pellets on the board.
func (b Board) CountPellets() int {
	n := 0
	for _, row := range b {
		for _, c := range row {
			if c.IsPellet() {
				n++
			}
		}
	}
	return n
}

// String renders the board with the template legend.
func (b Board) String() string {
	buf := make([]byte, 0, Rows*(Cols+1))
	for _, row := range b {
		for _, c := range row {
			buf = append(buf, byte(c.Rune()))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
