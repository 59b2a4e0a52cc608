package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"raycore/internal/logging"
	"raycore/internal/nav"
)

// Level is a loaded map: the wall grid, its blocked-cell set and spawn points.
type Level struct {
	Path string
	// Tiles holds 0 for open cells and the wall texture id otherwise.
	Tiles   [][]int
	blocked mapset.Set[nav.Cell]

	StartX, StartY float64
	AgentSpawns    []nav.Cell
}

// LoadMap reads a level from a text map file.
func LoadMap(path string) (*Level, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", path, err)
	}
	defer file.Close()

	level, err := ParseMap(file)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	level.Path = path
	return level, nil
}

// ParseMap reads a level from r. One line per row; empty lines and lines
// starting with '#' are skipped. Characters:
//
//	. _ space  open floor
//	1-9        wall, digit selects the texture
//	+          player start (open)
//	n          agent spawn (open)
func ParseMap(r io.Reader) (*Level, error) {
	log := logging.For("map_loader")

	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("map contains no rows")
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has inconsistent width: expected %d, got %d", i+1, width, len(row))
		}
	}

	level := &Level{
		Tiles:   make([][]int, len(rows)),
		blocked: mapset.New[nav.Cell](),
		StartX:  -1,
		StartY:  -1,
	}
	for y, row := range rows {
		level.Tiles[y] = make([]int, width)
		for x, ch := range []byte(row) {
			switch {
			case ch >= '1' && ch <= '9':
				level.Tiles[y][x] = int(ch - '0')
				level.blocked.Put(nav.Cell{X: x, Y: y})
			case ch == '+':
				level.StartX, level.StartY = float64(x)+0.5, float64(y)+0.5
			case ch == 'n':
				level.AgentSpawns = append(level.AgentSpawns, nav.Cell{X: x, Y: y})
			case ch == '.' || ch == '_' || ch == ' ':
			default:
				log.WithField("char", string(ch)).Warnf("unknown map symbol at (%d, %d), treating as floor", x, y)
			}
		}
	}
	if level.StartX < 0 {
		return nil, fmt.Errorf("map has no player start '+'")
	}

	log.WithFields(logrus.Fields{
		"width":   width,
		"height":  len(rows),
		"walls":   level.blocked.Size(),
		"agents":  len(level.AgentSpawns),
		"start_x": level.StartX,
		"start_y": level.StartY,
	}).Info("map loaded")
	return level, nil
}

// Width implements nav.Grid.
func (l *Level) Width() int {
	if len(l.Tiles) == 0 {
		return 0
	}
	return len(l.Tiles[0])
}

// Height implements nav.Grid.
func (l *Level) Height() int {
	return len(l.Tiles)
}

// Open implements nav.Grid.
func (l *Level) Open(x, y int) bool {
	return l.Wall(x, y) == 0
}

// Blocked implements nav.Grid: membership in the wall set only, with no
// bounds check.
func (l *Level) Blocked(c nav.Cell) bool {
	return l.blocked.Has(c)
}

// Wall returns the texture id at (x, y), 0 for floor. Cells outside the grid
// report 0.
func (l *Level) Wall(x, y int) int {
	if y < 0 || y >= len(l.Tiles) || x < 0 || x >= len(l.Tiles[y]) {
		return 0
	}
	return l.Tiles[y][x]
}

// Solid reports whether world position (x, y) is inside a wall or off the map.
// Movement uses this; the navigation graph does not.
func (l *Level) Solid(x, y float64) bool {
	c := nav.CellOf(x, y)
	if c.X < 0 || c.Y < 0 || c.X >= l.Width() || c.Y >= l.Height() {
		return true
	}
	return l.blocked.Has(c)
}

// WallIDs returns the distinct wall texture ids used by the level, ascending.
func (l *Level) WallIDs() []int {
	seen := mapset.New[int]()
	var ids []int
	for _, row := range l.Tiles {
		for _, id := range row {
			if id != 0 && !seen.Has(id) {
				seen.Put(id)
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	return ids
}
