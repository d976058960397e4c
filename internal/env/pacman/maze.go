package pacman

import "github.com/vovakirdan/tui-pacman/internal/env"

// Maze legend: '#' wall, '.' pellet, 'o' power pellet, ' ' empty corridor,
// 'G' ghost spawn (empty floor), 'P' player spawn (empty floor).
// The topmost ghost cell doubles as the open door out of the house.
var layout = []string{
	"###################",
	"#........#........#",
	"#o##.###.#.###.##o#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#.......#....#",
	"#.####.##G##.####.#",
	"#.#....#GGG#....#.#",
	"#.####.#####.####.#",
	"#....#.......#....#",
	"#.##.#.#####.#.##.#",
	"#o...#...P...#...o#",
	"#.##.###.#.###.##.#",
	"#........#........#",
	"###################",
}

// Pellet kinds in the pellet map.
const (
	pelletNone  byte = 0
	pelletDot   byte = 1
	pelletPower byte = 2
)

// maze holds the static board parsed from the layout. It never changes
// after init; all mutable data lives in State.
type maze struct {
	w, h        int
	walls       []bool
	pellets     []byte // Initial pellet map
	pelletCount int
	playerStart env.Position
	ghostStarts []env.Position
}

var board = parseMaze(layout)

func parseMaze(rows []string) *maze {
	m := &maze{
		h: len(rows),
	}
	for _, row := range rows {
		if len(row) > m.w {
			m.w = len(row)
		}
	}

	m.walls = make([]bool, m.w*m.h)
	m.pellets = make([]byte, m.w*m.h)

	for y, row := range rows {
		for x, ch := range row {
			i := y*m.w + x
			switch ch {
			case '#':
				m.walls[i] = true
			case '.':
				m.pellets[i] = pelletDot
				m.pelletCount++
			case 'o':
				m.pellets[i] = pelletPower
				m.pelletCount++
			case 'P':
				m.playerStart = env.Position{X: x, Y: y}
			case 'G':
				m.ghostStarts = append(m.ghostStarts, env.Position{X: x, Y: y})
			}
		}
	}
	return m
}

func (m *maze) idx(x, y int) int {
	return y*m.w + x
}

// wallAt reports whether (x, y) is a wall. Out-of-bounds counts as wall.
func (m *maze) wallAt(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return true
	}
	return m.walls[m.idx(x, y)]
}
