package gridsearch

// Path follows back-pointers from the goal to the start and returns the cells
// in start→goal order. ok is false while the chain is incomplete, which after
// ToEnd means the goal is unreachable. Before convergence the chain reflects
// the best pointers known so far.
// Complexity: O(path length).
func (g *Grid) Path() (path []Coord, ok bool) {
	var rev []int
	for cur, hops := g.goal, 0; cur != noNode && hops <= len(g.nodes); hops++ {
		rev = append(rev, cur)
		if cur == g.start {
			path = make([]Coord, len(rev))
			for k, idx := range rev {
				path[len(rev)-1-k] = g.coord(idx)
			}
			return path, true
		}
		cur = g.nodes[cur].cameFrom
	}
	return nil, false
}

// PathCost sums MovementCost along Path. ok mirrors Path.
func (g *Grid) PathCost() (cost uint, ok bool) {
	path, ok := g.Path()
	if !ok {
		return 0, false
	}
	for k := 1; k < len(path); k++ {
		cost += MovementCost(path[k-1], path[k])
	}
	return cost, true
}
