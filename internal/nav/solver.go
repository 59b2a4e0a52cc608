package nav

// Solver answers next-step queries over a static graph.
// Each query runs a fresh breadth-first search, so results always reflect the
// occupancy passed in.
type Solver struct {
	graph *Graph
}

// NewSolver returns a solver over graph.
func NewSolver(graph *Graph) *Solver {
	return &Solver{graph: graph}
}

// Graph returns the graph the solver searches.
func (s *Solver) Graph() *Graph {
	return s.graph
}

// NextStep returns the cell to move to from start in order to approach goal
// along a shortest path (by step count). Cells in occ are not expanded.
// When goal cannot be reached, start is returned: the caller stays in place.
func (s *Solver) NextStep(start, goal Cell, occ *Occupancy) Cell {
	if start == goal {
		return start
	}
	prev := s.search(start, goal, occ)

	if _, reached := prev[goal]; !reached {
		return start
	}

	step := goal
	for {
		p := prev[step]
		if p == start {
			return step
		}
		step = p
	}
}

// Path returns the full cell sequence from the successor of start up to goal,
// or nil when goal is unreachable or equal to start.
func (s *Solver) Path(start, goal Cell, occ *Occupancy) []Cell {
	if start == goal {
		return nil
	}
	prev := s.search(start, goal, occ)
	if _, reached := prev[goal]; !reached {
		return nil
	}

	var path []Cell
	for step := goal; step != start; step = prev[step] {
		path = append(path, step)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// search runs BFS from start and returns the predecessor map. The start cell
// maps to itself.
func (s *Solver) search(start, goal Cell, occ *Occupancy) map[Cell]Cell {
	prev := map[Cell]Cell{start: start}
	queue := []Cell{start}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == goal {
			break
		}
		for _, next := range s.graph.Neighbors(cur) {
			if _, seen := prev[next]; seen {
				continue
			}
			if occ.Has(next) {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	return prev
}
