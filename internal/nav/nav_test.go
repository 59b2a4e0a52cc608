package nav

import (
	"testing"

	"github.com/zyedidia/generic/mapset"
)

// testGrid is a rectangular grid whose blocked set equals its closed cells.
type testGrid struct {
	w, h    int
	blocked mapset.Set[Cell]
}

func newTestGrid(w, h int, blocked ...Cell) *testGrid {
	g := &testGrid{w: w, h: h, blocked: mapset.New[Cell]()}
	for _, c := range blocked {
		g.blocked.Put(c)
	}
	return g
}

func (g *testGrid) Width() int          { return g.w }
func (g *testGrid) Height() int         { return g.h }
func (g *testGrid) Open(x, y int) bool  { return !g.blocked.Has(Cell{x, y}) }
func (g *testGrid) Blocked(c Cell) bool { return g.blocked.Has(c) }

func isAdjacent(a, b Cell) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 && (dx != 0 || dy != 0)
}

func TestBuildGraphExcludesBlockedCell(t *testing.T) {
	blocked := Cell{5, 5}
	graph := BuildGraph(newTestGrid(10, 10, blocked))

	if graph.Has(blocked) {
		t.Fatalf("graph contains blocked cell %v as a key", blocked)
	}
	if graph.Len() != 99 {
		t.Errorf("expected 99 keys, got %d", graph.Len())
	}
	for _, c := range graph.Cells() {
		for _, n := range graph.Neighbors(c) {
			if n == blocked {
				t.Fatalf("neighbour list of %v contains blocked cell %v", c, blocked)
			}
		}
	}
}

func TestBuildGraphNeighbourOrder(t *testing.T) {
	graph := BuildGraph(newTestGrid(3, 3))
	got := graph.Neighbors(Cell{1, 1})
	want := []Cell{{0, 1}, {1, 0}, {2, 1}, {1, 2}, {0, 0}, {2, 0}, {2, 2}, {0, 2}}
	if len(got) != len(want) {
		t.Fatalf("expected %d neighbours, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbour %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildGraphEdgesAreNotBoundsChecked(t *testing.T) {
	graph := BuildGraph(newTestGrid(3, 3))
	// The corner keeps all eight neighbours: cells beyond the grid are not in
	// the blocked set, so they count as open.
	if n := len(graph.Neighbors(Cell{0, 0})); n != 8 {
		t.Errorf("expected 8 neighbours for corner without clamping, got %d", n)
	}

	clamped := BuildGraphWithOptions(newTestGrid(3, 3), BuildOptions{ClampToBounds: true})
	if n := len(clamped.Neighbors(Cell{0, 0})); n != 3 {
		t.Errorf("expected 3 neighbours for corner with clamping, got %d", n)
	}
	for _, n := range clamped.Neighbors(Cell{2, 2}) {
		if n.X > 2 || n.Y > 2 {
			t.Errorf("clamped graph produced out-of-bounds neighbour %v", n)
		}
	}
}

func TestBuildGraphDeterministic(t *testing.T) {
	grid := newTestGrid(8, 6, Cell{2, 2}, Cell{3, 2}, Cell{4, 4}, Cell{0, 5})
	a := BuildGraph(grid)
	b := BuildGraph(grid)
	if !a.Equal(b) {
		t.Fatal("building twice from the same grid produced different graphs")
	}
	if a.Equal(BuildGraph(newTestGrid(8, 6))) {
		t.Fatal("graphs from different grids compared equal")
	}
}

func TestNextStepOpenGrid(t *testing.T) {
	testCases := []struct {
		name string
		opts BuildOptions
	}{
		{"default", BuildOptions{}},
		{"clamped", BuildOptions{ClampToBounds: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			solver := NewSolver(BuildGraphWithOptions(newTestGrid(3, 3), tc.opts))
			start, goal := Cell{0, 0}, Cell{2, 2}

			next := solver.NextStep(start, goal, NewOccupancy())
			if !isAdjacent(start, next) {
				t.Fatalf("next step %v is not adjacent to start %v", next, start)
			}
			if !isAdjacent(next, goal) {
				t.Fatalf("next step %v is not on a 2-step path to %v", next, goal)
			}
			if next != (Cell{1, 1}) {
				t.Errorf("expected diagonal step (1,1), got %v", next)
			}

			path := solver.Path(start, goal, nil)
			if len(path) != 2 || path[0] != next || path[1] != goal {
				t.Errorf("unexpected path %v", path)
			}
		})
	}
}

func TestNextStepUnreachableReturnsStart(t *testing.T) {
	graph := BuildGraph(newTestGrid(7, 7))
	solver := NewSolver(graph)
	start, goal := Cell{0, 0}, Cell{4, 4}

	var ring []Cell
	for _, off := range neighborOffsets {
		ring = append(ring, Cell{goal.X + off.X, goal.Y + off.Y})
	}
	occ := NewOccupancy(ring...)

	if got := solver.NextStep(start, goal, occ); got != start {
		t.Errorf("expected start %v when goal is sealed off, got %v", start, got)
	}
	if path := solver.Path(start, goal, occ); path != nil {
		t.Errorf("expected nil path, got %v", path)
	}

	occ.Reset()
	if got := solver.NextStep(start, goal, occ); got == start {
		t.Error("expected progress once occupancy was cleared")
	}
}

func TestNextStepDisconnected(t *testing.T) {
	// Column x=2 is a wall splitting the grid in two.
	var wall []Cell
	for y := -1; y <= 5; y++ {
		wall = append(wall, Cell{2, y})
	}
	solver := NewSolver(BuildGraphWithOptions(newTestGrid(5, 5, wall...), BuildOptions{ClampToBounds: true}))
	if got := solver.NextStep(Cell{0, 0}, Cell{4, 4}, nil); got != (Cell{0, 0}) {
		t.Errorf("expected stay in place, got %v", got)
	}
}

func TestNextStepRoutesAroundOccupiedCell(t *testing.T) {
	solver := NewSolver(BuildGraphWithOptions(newTestGrid(5, 1), BuildOptions{ClampToBounds: true}))
	start, goal := Cell{0, 0}, Cell{4, 0}

	if got := solver.NextStep(start, goal, nil); got != (Cell{1, 0}) {
		t.Fatalf("expected (1,0), got %v", got)
	}
	// In a one-row corridor an agent in the way blocks the only route.
	if got := solver.NextStep(start, goal, NewOccupancy(Cell{2, 0})); got != start {
		t.Errorf("expected start when corridor is occupied, got %v", got)
	}
}

func TestNextStepTrivialCases(t *testing.T) {
	solver := NewSolver(BuildGraph(newTestGrid(3, 3)))
	c := Cell{1, 1}
	if got := solver.NextStep(c, c, nil); got != c {
		t.Errorf("start == goal: got %v", got)
	}
	if got := solver.NextStep(c, Cell{2, 1}, nil); got != (Cell{2, 1}) {
		t.Errorf("adjacent goal: got %v", got)
	}
	outside := Cell{40, 40}
	if got := solver.NextStep(outside, c, nil); got != outside {
		t.Errorf("start outside graph: got %v", got)
	}
}

func TestOccupancyReset(t *testing.T) {
	occ := NewOccupancy(Cell{1, 1}, Cell{2, 2})
	if occ.Len() != 2 || !occ.Has(Cell{1, 1}) {
		t.Fatalf("unexpected occupancy after construction: len=%d", occ.Len())
	}
	occ.Reset(Cell{3, 3})
	if occ.Has(Cell{1, 1}) || !occ.Has(Cell{3, 3}) || occ.Len() != 1 {
		t.Error("Reset did not replace previous cells")
	}
	var none *Occupancy
	if none.Has(Cell{0, 0}) || none.Len() != 0 {
		t.Error("nil occupancy should be empty")
	}
}

func TestCellOf(t *testing.T) {
	if got := CellOf(3.7, 0.2); got != (Cell{3, 0}) {
		t.Errorf("CellOf(3.7, 0.2) = %v", got)
	}
	if got := CellOf(-0.5, 1.0); got != (Cell{-1, 1}) {
		t.Errorf("CellOf(-0.5, 1.0) = %v", got)
	}
	x, y := Cell{2, 3}.Center()
	if x != 2.5 || y != 3.5 {
		t.Errorf("Center() = (%v, %v)", x, y)
	}
}
