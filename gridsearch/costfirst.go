package gridsearch

// costFirst is A*: open nodes are ranked by fCost = gCost + heuristic and a
// neighbour's back-pointer is replaced whenever a cheaper route to it is found.
// With the Manhattan heuristic (at most 2 per move against a move cost of at
// least 10) the heuristic is consistent, so the goal's chain is cost-optimal
// once the search converges.
type costFirst struct{}

func (costFirst) kind() StrategyKind { return CostFirst }

func (costFirst) rank(n *Node) uint { return n.fCost }

func (costFirst) discover(g *Grid, cur, nb int) {
	tentative := g.nodes[cur].gCost + g.movementCost(cur, nb)
	n := &g.nodes[nb]
	if tentative < n.gCost {
		n.gCost = tentative
		n.fCost = tentative + n.heuristic
		n.cameFrom = cur
	}
}
