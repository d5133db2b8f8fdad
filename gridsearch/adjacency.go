package gridsearch

import "sort"

// linkOffsets are the scan-order predecessors of a cell: left, up, up-left,
// up-right. Each link is mirrored, which yields full 8-connectivity.
var linkOffsets = [][2]int{{-1, 0}, {0, -1}, {-1, -1}, {1, -1}}

// rebuild recomputes adjacency, resets every node's search fields, recomputes
// heuristics from the goal and replays the active strategy (if any) to its
// requested step count.
// Complexity: O(columns×rows) plus the replay.
func (g *Grid) rebuild() {
	g.relink()
	g.replay(false)
}

// relink rebuilds all neighbour lists from the wall flags.
func (g *Grid) relink() {
	for idx := range g.nodes {
		g.nodes[idx].neighbours = g.nodes[idx].neighbours[:0]
	}
	for j := 0; j < g.rows; j++ {
		for i := 0; i < g.columns; i++ {
			u := g.index(i, j)
			for _, d := range linkOffsets {
				ni, nj := i+d[0], j+d[1]
				if !g.InBounds(ni, nj) {
					continue
				}
				g.link(u, g.index(ni, nj))
			}
		}
	}
}

// link connects u and v in both directions unless either is a wall.
func (g *Grid) link(u, v int) {
	if g.nodes[u].wall || g.nodes[v].wall {
		return
	}
	g.nodes[u].neighbours = append(g.nodes[u].neighbours, v)
	g.nodes[v].neighbours = append(g.nodes[v].neighbours, u)
}

// resetNodes clears costs and back-pointers and recomputes the Manhattan
// heuristic against the current goal.
func (g *Grid) resetNodes() {
	goal := g.nodes[g.goal].coord
	for idx := range g.nodes {
		n := &g.nodes[idx]
		n.resetSearch()
		n.heuristic = uint(absInt(n.coord.I-goal.I) + absInt(n.coord.J-goal.J))
	}
}

// MovementCost returns DiagonalCost when a and b differ in both coordinates,
// OrthogonalCost otherwise.
func MovementCost(a, b Coord) uint {
	if a.I != b.I && a.J != b.J {
		return DiagonalCost
	}
	return OrthogonalCost
}

func (g *Grid) movementCost(u, v int) uint {
	return MovementCost(g.nodes[u].coord, g.nodes[v].coord)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Regions returns the connected components of non-wall cells under the
// current adjacency. Components are ordered by their first cell in row-major
// order and each component lists its cells in row-major order.
// Time: O(columns×rows×8). Memory: O(columns×rows).
func (g *Grid) Regions() [][]Coord {
	seen := make([]bool, len(g.nodes))
	var comps [][]Coord
	for idx := range g.nodes {
		if g.nodes[idx].wall || seen[idx] {
			continue
		}
		members := g.flood(idx, seen)
		sort.Ints(members)
		comp := make([]Coord, len(members))
		for k, m := range members {
			comp[k] = g.coord(m)
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether a path of non-wall cells joins a and b.
func (g *Grid) Connected(a, b Coord) (bool, error) {
	u, err := g.checked(a.I, a.J)
	if err != nil {
		return false, err
	}
	v, err := g.checked(b.I, b.J)
	if err != nil {
		return false, err
	}
	if g.nodes[u].wall || g.nodes[v].wall {
		return false, nil
	}
	seen := make([]bool, len(g.nodes))
	g.flood(u, seen)

	return seen[v], nil
}

// flood marks every cell reachable from src in seen and returns them in BFS order.
func (g *Grid) flood(src int, seen []bool) []int {
	queue := []int{src}
	seen[src] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.nodes[queue[qi]].neighbours {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}
