package gridsearch

// Node is one cell of a Grid together with its per-run search state.
// Nodes live in the Grid's arena; neighbours and cameFrom are arena indices.
type Node struct {
	coord      Coord
	wall       bool
	neighbours []int
	heuristic  uint
	gCost      uint
	fCost      uint
	cameFrom   int
}

// Coord returns the cell position of n.
func (n *Node) Coord() Coord { return n.coord }

// IsWall reports whether n is impassable.
func (n *Node) IsWall() bool { return n.wall }

// Heuristic returns the Manhattan distance from n to the current goal.
func (n *Node) Heuristic() uint { return n.heuristic }

// GCost returns the best known movement cost from start to n, or InfCost.
func (n *Node) GCost() uint { return n.gCost }

// FCost returns GCost plus Heuristic once n has been reached, or InfCost.
func (n *Node) FCost() uint { return n.fCost }

// Reached reports whether the current run assigned n a cost.
func (n *Node) Reached() bool { return n.gCost != InfCost }

// resetSearch puts the scratch fields back to their unreached values.
func (n *Node) resetSearch() {
	n.gCost = InfCost
	n.fCost = InfCost
	n.cameFrom = noNode
}
