package nav

import (
	"math"
	"sort"
)

// Cell is a discrete position on the navigation grid.
type Cell struct {
	X, Y int
}

// CellOf returns the grid cell containing the world position (x, y).
func CellOf(x, y float64) Cell {
	return Cell{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// Center returns the world position of the middle of the cell.
func (c Cell) Center() (float64, float64) {
	return float64(c.X) + 0.5, float64(c.Y) + 0.5
}

// Grid is the static view of a level the graph builder needs.
type Grid interface {
	Width() int
	Height() int
	// Open reports whether the cell at (x, y) of the source grid is walkable.
	Open(x, y int) bool
	// Blocked reports membership in the level's blocked-cell set.
	Blocked(c Cell) bool
}

// neighborOffsets is the fixed expansion order: orthogonal first, then diagonal.
var neighborOffsets = [8]Cell{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
}

// BuildOptions tunes graph construction.
type BuildOptions struct {
	// ClampToBounds drops neighbours outside [0, Width) x [0, Height).
	// Off by default: a cell beyond the grid counts as open unless it is in
	// the blocked set, which keeps map-edge reachability unchanged.
	ClampToBounds bool
}

// Graph is the adjacency of open cells. It is immutable once built.
type Graph struct {
	adj map[Cell][]Cell
}

// BuildGraph builds the adjacency structure for every open cell of grid.
func BuildGraph(grid Grid) *Graph {
	return BuildGraphWithOptions(grid, BuildOptions{})
}

// BuildGraphWithOptions is BuildGraph with explicit options.
func BuildGraphWithOptions(grid Grid, opts BuildOptions) *Graph {
	w, h := grid.Width(), grid.Height()
	g := &Graph{adj: make(map[Cell][]Cell, w*h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !grid.Open(x, y) {
				continue
			}
			cell := Cell{X: x, Y: y}
			next := make([]Cell, 0, len(neighborOffsets))
			for _, off := range neighborOffsets {
				n := Cell{X: x + off.X, Y: y + off.Y}
				if grid.Blocked(n) {
					continue
				}
				if opts.ClampToBounds && (n.X < 0 || n.Y < 0 || n.X >= w || n.Y >= h) {
					continue
				}
				next = append(next, n)
			}
			g.adj[cell] = next
		}
	}
	return g
}

// Neighbors returns the ordered neighbour list of c, or nil if c is not a key.
// The returned slice must not be modified.
func (g *Graph) Neighbors(c Cell) []Cell {
	return g.adj[c]
}

// Has reports whether c is a key of the graph.
func (g *Graph) Has(c Cell) bool {
	_, ok := g.adj[c]
	return ok
}

// Len returns the number of keys.
func (g *Graph) Len() int {
	return len(g.adj)
}

// Cells returns all keys sorted row by row.
func (g *Graph) Cells() []Cell {
	cells := make([]Cell, 0, len(g.adj))
	for c := range g.adj {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// Equal reports whether both graphs have the same keys and neighbour lists.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	for c, next := range g.adj {
		theirs, ok := other.adj[c]
		if !ok || len(theirs) != len(next) {
			return false
		}
		for i := range next {
			if next[i] != theirs[i] {
				return false
			}
		}
	}
	return true
}
