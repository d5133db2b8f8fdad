package gridsearch

import (
	"fmt"
	"log/slog"
	"math"
)

// Grid is a fixed-size arena of Nodes plus the Start and Goal markers.
// A Grid is not safe for concurrent use.
type Grid struct {
	columns, rows int
	nodes         []Node
	start, goal   int
	search        *search
	opts          Options
	log           *slog.Logger
}

// NewGrid constructs a columns×rows grid with no walls, places the markers at
// start and goal, and performs the initial rebuild. No strategy is selected.
// Returns ErrBadDimensions if either size is outside [1, MaxDimension],
// ErrInvalidIndex if a marker lies outside the grid,
// ErrInvalidPlacement if start == goal.
// Complexity: O(columns×rows).
func NewGrid(columns, rows int, start, goal Coord, opts ...Option) (*Grid, error) {
	if columns < 1 || columns > MaxDimension || rows < 1 || rows > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d (max %d)", ErrBadDimensions, columns, rows, MaxDimension)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Grid{
		columns: columns,
		rows:    rows,
		nodes:   make([]Node, columns*rows),
		opts:    cfg,
		log:     cfg.Logger,
	}
	for j := 0; j < rows; j++ {
		for i := 0; i < columns; i++ {
			n := &g.nodes[g.index(i, j)]
			n.coord = Coord{I: i, J: j}
			n.resetSearch()
		}
	}
	s, err := g.checked(start.I, start.J)
	if err != nil {
		return nil, err
	}
	t, err := g.checked(goal.I, goal.J)
	if err != nil {
		return nil, err
	}
	if s == t {
		return nil, fmt.Errorf("%w: start and goal both at %v", ErrInvalidPlacement, start)
	}
	g.start, g.goal = s, t
	g.rebuild()

	return g, nil
}

// Columns returns the grid width in cells.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether (i,j) lies within the grid.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.columns && j >= 0 && j < g.rows
}

// index maps (i,j) to a row-major arena index.
func (g *Grid) index(i, j int) int {
	return j*g.columns + i
}

// coord converts an arena index back to its cell position.
func (g *Grid) coord(idx int) Coord {
	return Coord{I: idx % g.columns, J: idx / g.columns}
}

// checked validates (i,j) and returns its arena index.
func (g *Grid) checked(i, j int) (int, error) {
	if !g.InBounds(i, j) {
		return noNode, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrInvalidIndex, i, j, g.columns, g.rows)
	}
	return g.index(i, j), nil
}

// Node returns the cell at (i,j). The returned Node is read-only for callers:
// its fields are only changed by Grid commands.
func (g *Grid) Node(i, j int) (*Node, error) {
	idx, err := g.checked(i, j)
	if err != nil {
		return nil, err
	}
	return &g.nodes[idx], nil
}

// Start returns the start marker's cell.
func (g *Grid) Start() Coord { return g.coord(g.start) }

// Goal returns the goal marker's cell.
func (g *Grid) Goal() Coord { return g.coord(g.goal) }

// IsWall reports whether (i,j) is a wall.
func (g *Grid) IsWall(i, j int) (bool, error) {
	idx, err := g.checked(i, j)
	if err != nil {
		return false, err
	}
	return g.nodes[idx].wall, nil
}

// Heuristic returns the Manhattan distance from (i,j) to the goal.
func (g *Grid) Heuristic(i, j int) (uint, error) {
	idx, err := g.checked(i, j)
	if err != nil {
		return 0, err
	}
	return g.nodes[idx].heuristic, nil
}

// GCost returns the accumulated cost at (i,j), InfCost if unreached.
func (g *Grid) GCost(i, j int) (uint, error) {
	idx, err := g.checked(i, j)
	if err != nil {
		return 0, err
	}
	return g.nodes[idx].gCost, nil
}

// FCost returns gCost+heuristic at (i,j), InfCost if unreached.
func (g *Grid) FCost(i, j int) (uint, error) {
	idx, err := g.checked(i, j)
	if err != nil {
		return 0, err
	}
	return g.nodes[idx].fCost, nil
}

// CameFrom returns the back-pointer of (i,j). ok is false when none is set.
func (g *Grid) CameFrom(i, j int) (from Coord, ok bool, err error) {
	idx, err := g.checked(i, j)
	if err != nil {
		return Coord{}, false, err
	}
	prev := g.nodes[idx].cameFrom
	if prev == noNode {
		return Coord{}, false, nil
	}
	return g.coord(prev), true, nil
}

// Neighbours returns the cells linked to (i,j) in link order.
func (g *Grid) Neighbours(i, j int) ([]Coord, error) {
	idx, err := g.checked(i, j)
	if err != nil {
		return nil, err
	}
	out := make([]Coord, 0, len(g.nodes[idx].neighbours))
	for _, n := range g.nodes[idx].neighbours {
		out = append(out, g.coord(n))
	}
	return out, nil
}

// Walls returns every wall cell in row-major order.
func (g *Grid) Walls() []Coord {
	var out []Coord
	for idx := range g.nodes {
		if g.nodes[idx].wall {
			out = append(out, g.nodes[idx].coord)
		}
	}
	return out
}

// Center returns the canvas position of the middle of (i,j), used to draw
// lines between a cell and its back-pointer.
func (g *Grid) Center(i, j int) (Point, error) {
	if _, err := g.checked(i, j); err != nil {
		return Point{}, err
	}
	return Point{
		X: g.opts.OriginX + (float64(i)+0.5)*g.opts.CellWidth,
		Y: g.opts.OriginY + (float64(j)+0.5)*g.opts.CellHeight,
	}, nil
}

// CellAt maps a canvas position to the cell containing it.
// ok is false when p falls outside the grid.
func (g *Grid) CellAt(p Point) (c Coord, ok bool) {
	fi := math.Floor((p.X - g.opts.OriginX) / g.opts.CellWidth)
	fj := math.Floor((p.Y - g.opts.OriginY) / g.opts.CellHeight)
	if fi < 0 || fj < 0 || fi >= float64(g.columns) || fj >= float64(g.rows) {
		return Coord{}, false
	}
	return Coord{I: int(fi), J: int(fj)}, true
}

//----------------------------------------------------------------------------//
// Commands
//----------------------------------------------------------------------------//

// ToggleWall sets the wall flag of (i,j) and rebuilds.
// Setting a flag on the start or goal cell is silently ignored.
func (g *Grid) ToggleWall(i, j int, wall bool) error {
	idx, err := g.checked(i, j)
	if err != nil {
		return err
	}
	if idx == g.start || idx == g.goal {
		return nil
	}
	g.nodes[idx].wall = wall
	g.rebuild()

	return nil
}

// MoveStart relocates the start marker to (i,j) and rebuilds.
// Returns ErrInvalidPlacement if (i,j) is a wall or the goal cell.
func (g *Grid) MoveStart(i, j int) error {
	idx, err := g.placement(i, j, g.goal)
	if err != nil {
		return err
	}
	g.start = idx
	g.rebuild()

	return nil
}

// MoveGoal relocates the goal marker to (i,j) and rebuilds.
// Returns ErrInvalidPlacement if (i,j) is a wall or the start cell.
func (g *Grid) MoveGoal(i, j int) error {
	idx, err := g.placement(i, j, g.start)
	if err != nil {
		return err
	}
	g.goal = idx
	g.rebuild()

	return nil
}

// placement validates a marker target against walls and the other marker.
func (g *Grid) placement(i, j, other int) (int, error) {
	idx, err := g.checked(i, j)
	if err != nil {
		return noNode, err
	}
	if g.nodes[idx].wall {
		return noNode, fmt.Errorf("%w: (%d,%d) is a wall", ErrInvalidPlacement, i, j)
	}
	if idx == other {
		return noNode, fmt.Errorf("%w: (%d,%d) holds the other marker", ErrInvalidPlacement, i, j)
	}
	return idx, nil
}

// ClearWalls removes every wall and rebuilds once.
func (g *Grid) ClearWalls() {
	for idx := range g.nodes {
		g.nodes[idx].wall = false
	}
	g.rebuild()
}

// SelectStrategy installs a fresh run of the given strategy (requested steps
// reset to zero) and rebuilds. Returns ErrUnknownStrategy for other kinds.
func (g *Grid) SelectStrategy(kind StrategyKind) error {
	exp, err := newExpander(kind)
	if err != nil {
		return err
	}
	g.search = newSearch(exp, len(g.nodes))
	g.rebuild()

	return nil
}

// Strategy returns the active strategy; ok is false before SelectStrategy.
func (g *Grid) Strategy() (kind StrategyKind, ok bool) {
	if g.search == nil {
		return 0, false
	}
	return g.search.exp.kind(), true
}
