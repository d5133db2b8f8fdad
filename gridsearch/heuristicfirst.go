package gridsearch

// heuristicFirst is greedy best-first search: open nodes are ranked by
// heuristic alone and a neighbour keeps the first back-pointer it receives.
// Costs are stamped at that first discovery and never lowered, so they
// describe the chosen chain rather than a shortest one.
type heuristicFirst struct{}

func (heuristicFirst) kind() StrategyKind { return HeuristicFirst }

func (heuristicFirst) rank(n *Node) uint { return n.heuristic }

func (heuristicFirst) discover(g *Grid, cur, nb int) {
	n := &g.nodes[nb]
	if n.cameFrom != noNode {
		return
	}
	n.cameFrom = cur
	n.gCost = g.nodes[cur].gCost + g.movementCost(cur, nb)
	n.fCost = n.gCost + n.heuristic
}
